package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"cppstyle/internal/rules"
)

// ConsoleSink renders results to a terminal or pipe.
//
// Formats:
//   - text: one human-readable line per result
//   - json: buffers results and writes a single indented array on Close
//   - ndjson: streams Event records, one JSON object per line
type ConsoleSink struct {
	mu       sync.Mutex
	w        io.Writer
	format   string
	statuses map[string]bool // empty means no filtering
	buffered []rules.Result  // json mode only
}

func NewConsoleSink(w io.Writer, format string, filterStatuses []string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}
	s := &ConsoleSink{w: w, format: format}
	if len(filterStatuses) > 0 {
		s.statuses = make(map[string]bool, len(filterStatuses))
		for _, st := range filterStatuses {
			s.statuses[strings.ToUpper(st)] = true
		}
	}
	return s
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := v.(rules.Result); ok && len(s.statuses) > 0 && !s.statuses[string(r.Status)] {
		return nil
	}

	switch s.format {
	case "text":
		r, ok := v.(rules.Result)
		if !ok {
			// Lifecycle events are ndjson-only.
			return nil
		}
		return s.writeTextLine(r)
	case "json":
		if r, ok := v.(rules.Result); ok {
			s.buffered = append(s.buffered, r)
		}
		return nil
	case "ndjson":
		return s.writeNDJSON(v)
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) writeTextLine(r rules.Result) error {
	loc := r.File
	if r.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", r.File, r.Line, r.Column)
	}
	line := fmt.Sprintf("[%s] %s: %s", r.Status, loc, r.RuleID)
	if r.Message != "" {
		line += " - " + r.Message
	}
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return err
	}
	return flushIfPossible(s.w)
}

func (s *ConsoleSink) writeNDJSON(v any) error {
	enc := json.NewEncoder(s.w)
	var e Event
	switch t := v.(type) {
	case Event:
		e = t
	case rules.Result:
		e = eventFromResult(t)
	default:
		return nil
	}
	if err := enc.Encode(e); err != nil {
		return err
	}
	return flushIfPossible(s.w)
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.format {
	case "json":
		enc := json.NewEncoder(s.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s.buffered); err != nil {
			return err
		}
		return flushIfPossible(s.w)
	case "text", "ndjson":
		return nil
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}
