package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

// SpySpanContext is the specification.SpanContext handed out by TracingCollectorSpy.
type SpySpanContext struct {
	name       string
	startAttrs map[string]string
	attributes map[string]string
	status     string
	mu         sync.Mutex
}

func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attributes[key] = value
}

// SpySpanRecord represents a finished span.
type SpySpanRecord struct {
	Name       string
	Status     string
	StartAttrs map[string]string
	EndAttrs   map[string]string
	SpanAttrs  map[string]string
}

// TracingCollectorSpy captures spans started and finished through specification.TracingCollector.
type TracingCollectorSpy struct {
	records []SpySpanRecord
	mu      sync.Mutex
}

func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, specification.SpanContext) {

	return ctx, &SpySpanContext{
		name:       name,
		startAttrs: maps.Clone(attrs),
		attributes: make(map[string]string),
	}
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx specification.SpanContext, status string, attrs map[string]string) {
	spySpan, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	spySpan.mu.Lock()
	record := SpySpanRecord{
		Name:       spySpan.name,
		Status:     status,
		StartAttrs: spySpan.startAttrs,
		EndAttrs:   maps.Clone(attrs),
		SpanAttrs:  maps.Clone(spySpan.attributes),
	}
	spySpan.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

func (s *TracingCollectorSpy) GetSpanRecords() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpySpanRecord(nil), s.records...)
}

// HasSpanRecord reports whether a span with name was finished with status.
func (s *TracingCollectorSpy) HasSpanRecord(name, status string) bool {
	for _, r := range s.GetSpanRecords() {
		if r.Name == name && r.Status == status {
			return true
		}
	}

	return false
}

var _ specification.TracingCollector = (*TracingCollectorSpy)(nil)
