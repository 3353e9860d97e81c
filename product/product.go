package product

import (
	"fmt"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

const (
	AttrName  = "name"
	AttrColor = "color"
	AttrSize  = "size"
)

// Color of a Product.
type Color string

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

// Size of a Product.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// Products is an alias type for a slice of Product
type Products = []Product

// Product is a value: two products with equal attributes are the same product.
type Product struct {
	Name  string
	Color Color
	Size  Size
}

// Build is a factory method for Product.
func Build(name string, color Color, size Size) Product {
	return Product{
		Name:  name,
		Color: color,
		Size:  size,
	}
}

// Attributes implements specification.Attributed.
func (p Product) Attributes() specification.Attributes {
	return specification.Attributes{
		AttrName:  p.Name,
		AttrColor: string(p.Color),
		AttrSize:  string(p.Size),
	}
}

func (p Product) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.Color, p.Size)
}

// AsAttributed converts Products for use with specifications over specification.Attributed.
func AsAttributed(products Products) []specification.Attributed {
	return specification.AsAttributed(products)
}

var _ specification.Attributed = Product{}
