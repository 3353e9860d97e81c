package shape

import (
	"errors"
)

var ErrNonPositiveSide = errors.New("side length must be positive")
var ErrNilShape = errors.New("shape must not be nil")
