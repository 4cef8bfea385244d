package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"cppstyle/internal/rules"
)

// EmitSink mirrors run output to an extra writer, typically a pipe consumed
// by another tool. In json mode it buffers results and emits one array on
// Close; in ndjson mode it streams Event records as they arrive.
type EmitSink struct {
	mu       sync.Mutex
	w        io.Writer
	format   string
	buffered []rules.Result
}

func NewEmitSink(w io.Writer, format string) (*EmitSink, error) {
	if w == nil {
		return nil, fmt.Errorf("emit sink writer must not be nil")
	}
	switch format {
	case "json", "ndjson":
	default:
		return nil, fmt.Errorf("unsupported emit format: %s", format)
	}
	return &EmitSink{w: w, format: format}, nil
}

func (s *EmitSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		if r, ok := v.(rules.Result); ok {
			s.buffered = append(s.buffered, r)
		}
		return nil
	}

	var e Event
	switch t := v.(type) {
	case Event:
		e = t
	case rules.Result:
		e = eventFromResult(t)
	default:
		return nil
	}
	if err := json.NewEncoder(s.w).Encode(e); err != nil {
		return err
	}
	return flushIfPossible(s.w)
}

func (s *EmitSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format != "json" {
		return nil
	}
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.buffered); err != nil {
		return err
	}
	return flushIfPossible(s.w)
}
