package persistence

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/solid-specifications-go/journal"
)

// Format selects how a journal is rendered before it is stored.
type Format string

const (
	// FormatText renders "number: text" lines, exactly like Journal.String.
	FormatText Format = "text"

	// FormatJSON renders {"entries":[{"number":1,"text":"..."}]}.
	FormatJSON Format = "json"
)

type jsonEntry struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type jsonJournal struct {
	Entries []jsonEntry `json:"entries"`
}

// Render renders j in the given format.
func Render(j *journal.Journal, format Format) (string, error) {
	if j == nil {
		return "", ErrNilJournal
	}

	switch format {
	case FormatText:
		return j.String(), nil

	case FormatJSON:
		doc := jsonJournal{Entries: make([]jsonEntry, 0, j.Len())}
		for _, e := range j.Entries() {
			doc.Entries = append(doc.Entries, jsonEntry{Number: e.Number, Text: e.Text})
		}

		rendered, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(doc)
		if err != nil {
			return "", errors.Join(ErrRenderingFailed, err)
		}

		return rendered, nil

	default:
		return "", ErrUnsupportedFormat
	}
}
