package shape

import (
	"fmt"
)

// AreaCheck is the outcome of changing the height of a shape and comparing
// the resulting area with what a caller who only knows Shape expects.
type AreaCheck struct {
	Expected int
	Got      int
}

// CheckAreaAfterHeightChange sets the height of s via WithHeight and compares the area with width*height.
func CheckAreaAfterHeightChange(s Shape, height int) (AreaCheck, error) {
	resized, err := WithHeight(s, height)
	if err != nil {
		return AreaCheck{}, err
	}

	return AreaCheck{
		Expected: s.Width() * height,
		Got:      resized.Area(),
	}, nil
}

func (c AreaCheck) Holds() bool {
	return c.Expected == c.Got
}

func (c AreaCheck) String() string {
	return fmt.Sprintf("Expected area of %d, got %d", c.Expected, c.Got)
}
