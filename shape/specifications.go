package shape

import (
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

// IsSquareSpecification is satisfied by every Shape with equal sides, be it a Square or a Rectangle.
type IsSquareSpecification struct{}

func (IsSquareSpecification) IsSatisfied(s Shape) bool {
	if s == nil {
		return false
	}

	return s.Width() == s.Height()
}

// MinAreaSpecification is satisfied by shapes with an area of at least MinArea.
type MinAreaSpecification struct {
	MinArea int
}

func (m MinAreaSpecification) IsSatisfied(s Shape) bool {
	if s == nil {
		return false
	}

	return s.Area() >= m.MinArea
}

var (
	_ specification.Specification[Shape] = IsSquareSpecification{}
	_ specification.Specification[Shape] = MinAreaSpecification{}
)
