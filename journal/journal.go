package journal

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

const (
	AttrNumber = "number"
	AttrText   = "text"
)

// Entry is a single numbered journal entry.
type Entry struct {
	Number int
	Text   string
}

func (e Entry) String() string {
	return fmt.Sprintf("%d: %s", e.Number, e.Text)
}

func (e Entry) Attributes() specification.Attributes {
	return specification.Attributes{
		AttrNumber: strconv.Itoa(e.Number),
		AttrText:   e.Text,
	}
}

// Journal holds entries in the order they were added.
// Entry numbers start at 1 for every journal and are never reused, not even after a removal.
type Journal struct {
	entries    []Entry
	lastNumber int
}

func New() *Journal {
	return &Journal{}
}

// AddEntry appends an entry and returns its number.
func (j *Journal) AddEntry(text string) int {
	j.lastNumber++
	j.entries = append(j.entries, Entry{Number: j.lastNumber, Text: text})

	return j.lastNumber
}

// RemoveEntry removes the entry with the given number and reports whether it existed.
func (j *Journal) RemoveEntry(number int) bool {
	idx := slices.IndexFunc(j.entries, func(e Entry) bool { return e.Number == number })
	if idx < 0 {
		return false
	}

	j.entries = slices.Delete(j.entries, idx, idx+1)

	return true
}

// Entries returns a copy of the current entries.
func (j *Journal) Entries() []Entry {
	return slices.Clone(j.entries)
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// String renders one "number: text" line per entry.
func (j *Journal) String() string {
	lines := make([]string, 0, len(j.entries))
	for _, e := range j.entries {
		lines = append(lines, e.String())
	}

	return strings.Join(lines, "\n")
}

// TextContains is satisfied by entries whose text contains Substring.
type TextContains struct {
	Substring string
}

func (s TextContains) IsSatisfied(e Entry) bool {
	return strings.Contains(e.Text, s.Substring)
}

var (
	_ specification.Attributed           = Entry{}
	_ specification.Specification[Entry] = TextContains{}
)
