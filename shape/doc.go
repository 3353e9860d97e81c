// Package shape models rectangles and squares as immutable values.
//
// A Square is not a Rectangle subtype with overridden setters. Both satisfy the read-only Shape interface,
// and every "modification" returns a new value, so code written against Shape can never observe a
// square silently changing both sides:
//
//	sq, _ := shape.NewSquare(5)
//	r, _ := shape.WithHeight(sq, 10) // r is the Rectangle 5x10, sq is still 5x5
package shape
