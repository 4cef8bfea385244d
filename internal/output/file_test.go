package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cppstyle/internal/rules"
)

func TestFileSink_InferFormatFromExtension(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "out.json"},
		{path: "out.ndjson"},
		{path: "out.jsonl"},
		{path: "out.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.path)
			sink, err := NewFileSink(path, "")
			if tt.wantErr {
				if err == nil {
					t.Error("expected format inference error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFileSink() error = %v", err)
			}
			_ = sink.Close()
		})
	}
}

func TestFileSink_WritesJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	sink, err := NewFileSink(path, "json")
	if err != nil {
		t.Fatalf("NewFileSink() error = %v", err)
	}

	if err := sink.Write(rules.Result{Status: rules.StatusFail, File: "a.hpp", RuleID: "r1"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var results []rules.Result
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(results) != 1 || results[0].File != "a.hpp" {
		t.Errorf("unexpected contents: %+v", results)
	}
}

func TestFileSink_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")
	sink, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}
