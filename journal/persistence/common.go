package persistence

import (
	"errors"
)

var ErrNilStorage = errors.New("storage must not be nil")
var ErrNilJournal = errors.New("journal must not be nil")
var ErrEmptyDestination = errors.New("empty destination supplied")
var ErrUnsupportedFormat = errors.New("unsupported format")
var ErrRenderingFailed = errors.New("rendering journal failed")
var ErrSavingFailed = errors.New("saving journal failed")
