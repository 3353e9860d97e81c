package shape

import (
	"fmt"
	"strconv"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

const (
	AttrKind   = "kind"
	AttrWidth  = "width"
	AttrHeight = "height"

	KindRectangle = "rectangle"
	KindSquare    = "square"
)

// Shape is the read-only contract shared by Rectangle and Square.
type Shape interface {
	Width() int
	Height() int
	Area() int
	String() string
}

/***** Rectangle *****/

type Rectangle struct {
	width  int
	height int
}

func NewRectangle(width, height int) (Rectangle, error) {
	if width <= 0 || height <= 0 {
		return Rectangle{}, fmt.Errorf("%w: %dx%d", ErrNonPositiveSide, width, height)
	}

	return Rectangle{width: width, height: height}, nil
}

func (r Rectangle) Width() int {
	return r.width
}

func (r Rectangle) Height() int {
	return r.height
}

func (r Rectangle) Area() int {
	return r.width * r.height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d", r.width, r.height)
}

func (r Rectangle) WithWidth(width int) (Rectangle, error) {
	return NewRectangle(width, r.height)
}

func (r Rectangle) WithHeight(height int) (Rectangle, error) {
	return NewRectangle(r.width, height)
}

// IsSquare reports whether both sides happen to be equal.
func (r Rectangle) IsSquare() bool {
	return r.width == r.height
}

// AsSquare converts r into a Square if its sides are equal.
func (r Rectangle) AsSquare() (Square, bool) {
	if !r.IsSquare() {
		return Square{}, false
	}

	return Square{side: r.width}, true
}

func (r Rectangle) Attributes() specification.Attributes {
	return attributesOf(KindRectangle, r)
}

/***** Square *****/

// Square keeps its sides equal by construction, there is no way to change just one of them.
type Square struct {
	side int
}

func NewSquare(side int) (Square, error) {
	if side <= 0 {
		return Square{}, fmt.Errorf("%w: %d", ErrNonPositiveSide, side)
	}

	return Square{side: side}, nil
}

func (s Square) Side() int {
	return s.side
}

func (s Square) Width() int {
	return s.side
}

func (s Square) Height() int {
	return s.side
}

func (s Square) Area() int {
	return s.side * s.side
}

func (s Square) String() string {
	return fmt.Sprintf("%dx%d", s.side, s.side)
}

func (s Square) WithSide(side int) (Square, error) {
	return NewSquare(side)
}

func (s Square) AsRectangle() Rectangle {
	return Rectangle{width: s.side, height: s.side}
}

func (s Square) Attributes() specification.Attributes {
	return attributesOf(KindSquare, s)
}

func attributesOf(kind string, s Shape) specification.Attributes {
	return specification.Attributes{
		AttrKind:   kind,
		AttrWidth:  strconv.Itoa(s.Width()),
		AttrHeight: strconv.Itoa(s.Height()),
	}
}

// WithHeight returns a Rectangle with the width of s and the given height, whatever the concrete Shape is.
func WithHeight(s Shape, height int) (Rectangle, error) {
	if s == nil {
		return Rectangle{}, ErrNilShape
	}

	return NewRectangle(s.Width(), height)
}

var (
	_ Shape                    = Rectangle{}
	_ Shape                    = Square{}
	_ specification.Attributed = Rectangle{}
	_ specification.Attributed = Square{}
)
