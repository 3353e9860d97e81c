// Package report renders matched items for humans.
package report

import (
	"fmt"
	"io"
)

// Sink accepts a titled sequence of matched items.
type Sink[T any] interface {
	Report(title string, items []T) error
}

// Console writes a title line followed by one " * <line>" per item.
type Console[T any] struct {
	out  io.Writer
	line func(T) string
}

// NewConsole creates a Console writing to out. A nil line func renders items with fmt.Sprint.
func NewConsole[T any](out io.Writer, line func(T) string) Console[T] {
	if line == nil {
		line = func(item T) string { return fmt.Sprint(item) }
	}

	return Console[T]{out: out, line: line}
}

// Report writes the title (if any) and the items. It stops at the first write error.
func (c Console[T]) Report(title string, items []T) error {
	if title != "" {
		if _, err := fmt.Fprintln(c.out, title); err != nil {
			return err
		}
	}

	for _, item := range items {
		if _, err := fmt.Fprintf(c.out, " * %s\n", c.line(item)); err != nil {
			return err
		}
	}

	return nil
}

var _ Sink[string] = Console[string]{}
