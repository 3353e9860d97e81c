package product

import (
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

// ProductFilter filters products with one method per criterion.
// Every new criterion, or combination of criteria, needs another method here,
// which is what specification.Filter with Specification types avoids.
type ProductFilter struct{}

// FilterByColor returns the products of the given color.
func (ProductFilter) FilterByColor(products Products, color Color) Products {
	return specification.Filter(products, specification.Func[Product](func(p Product) bool {
		return p.Color == color
	}))
}

// FilterBySize returns the products of the given size.
func (ProductFilter) FilterBySize(products Products, size Size) Products {
	return specification.Filter(products, specification.Func[Product](func(p Product) bool {
		return p.Size == size
	}))
}

// FilterBySizeAndColor returns the products of the given size and color.
func (ProductFilter) FilterBySizeAndColor(products Products, size Size, color Color) Products {
	return specification.Filter(products, specification.Func[Product](func(p Product) bool {
		return p.Size == size && p.Color == color
	}))
}
