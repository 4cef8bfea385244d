package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cppstyle/internal/rules"
)

// FileSink persists results to disk. When format is empty it is inferred
// from the extension: .json buffers an array, .ndjson/.jsonl stream events.
type FileSink struct {
	mu       sync.Mutex
	f        *os.File
	format   string
	buffered []rules.Result
}

func NewFileSink(path string, format string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("output path required")
	}

	if format == "" {
		var err error
		if format, err = inferFileFormat(path); err != nil {
			return nil, err
		}
	}
	if format != "json" && format != "ndjson" {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &FileSink{f: f, format: format}, nil
}

func inferFileFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return "json", nil
	case ".ndjson", ".jsonl":
		return "ndjson", nil
	default:
		return "", fmt.Errorf("cannot infer output format from file extension %q", ext)
	}
}

func (s *FileSink) Write(v any) error {
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
	return json.NewEncoder(s.f).Encode(e)
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.format == "json" {
		enc := json.NewEncoder(s.f)
		enc.SetIndent("", "  ")
		err = enc.Encode(s.buffered)
	}
	if closeErr := s.f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
