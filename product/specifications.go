package product

import (
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

// ColorSpecification is satisfied by products of the given Color.
type ColorSpecification struct {
	Color Color
}

func (s ColorSpecification) IsSatisfied(p Product) bool {
	return p.Color == s.Color
}

// SizeSpecification is satisfied by products of the given Size.
type SizeSpecification struct {
	Size Size
}

func (s SizeSpecification) IsSatisfied(p Product) bool {
	return p.Size == s.Size
}

// NameSpecification is satisfied by products with exactly the given Name.
type NameSpecification struct {
	Name string
}

func (s NameSpecification) IsSatisfied(p Product) bool {
	return p.Name == s.Name
}

var (
	_ specification.Specification[Product] = ColorSpecification{}
	_ specification.Specification[Product] = SizeSpecification{}
	_ specification.Specification[Product] = NameSpecification{}
)
