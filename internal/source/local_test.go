package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

func TestLocalSource_DiscoverFiltersExtensions(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/foo.hpp":    "",
		"src/foo.cpp":    "",
		"src/bar.cc":     "",
		"src/notes.txt":  "",
		"src/build.yaml": "",
		"README.md":      "",
	})

	src, err := NewLocalSource([]string{dir})
	if err != nil {
		t.Fatalf("NewLocalSource() error = %v", err)
	}
	refs, err := src.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(refs) != 3 {
		t.Fatalf("Discover() = %d files, want 3: %+v", len(refs), refs)
	}
}

func TestLocalSource_DiscoverSorted(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"z.hpp": "",
		"a.hpp": "",
		"m.cpp": "",
	})

	src, _ := NewLocalSource([]string{dir})
	refs, err := src.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	for i := 1; i < len(refs); i++ {
		if refs[i-1].Path >= refs[i].Path {
			t.Errorf("paths not sorted: %q before %q", refs[i-1].Path, refs[i].Path)
		}
	}
}

func TestLocalSource_DiscoverGlob(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"include/a.hpp": "",
		"include/b.hpp": "",
		"src/a.cpp":     "",
	})

	src, _ := NewLocalSource([]string{filepath.Join(dir, "include", "**", "*.hpp")})
	refs, err := src.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("Discover() = %d files, want 2: %+v", len(refs), refs)
	}
}

func TestLocalSource_DiscoverSingleFile(t *testing.T) {
	dir := writeTree(t, map[string]string{"foo.hpp": "class Foo {};"})

	src, _ := NewLocalSource([]string{filepath.Join(dir, "foo.hpp")})
	refs, err := src.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("Discover() = %d files, want 1", len(refs))
	}

	data, err := src.Read(context.Background(), refs[0])
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "class Foo {};" {
		t.Errorf("Read() = %q", string(data))
	}
}

func TestLocalSource_MissingPath(t *testing.T) {
	src, _ := NewLocalSource([]string{filepath.Join(t.TempDir(), "nope")})
	if _, err := src.Discover(context.Background()); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestLocalSource_SkipsHiddenDirectories(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src/a.hpp":         "",
		".git/objects/x.cc": "",
	})

	src, _ := NewLocalSource([]string{dir})
	refs, err := src.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("Discover() = %d files, want 1: %+v", len(refs), refs)
	}
}

func TestIsCXXFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.hpp", true},
		{"a.HPP", true},
		{"a.cc", true},
		{"a.cxx", true},
		{"a.h", true},
		{"a.go", false},
		{"a", false},
		{"Makefile", false},
	}
	for _, tt := range tests {
		if got := IsCXXFile(tt.path); got != tt.want {
			t.Errorf("IsCXXFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParseRepo(t *testing.T) {
	if _, _, err := ParseRepo("owner/name/extra"); err == nil {
		t.Error("expected error for malformed repo spec")
	}
	owner, name, err := ParseRepo("acme/engine")
	if err != nil {
		t.Fatalf("ParseRepo() error = %v", err)
	}
	if owner != "acme" || name != "engine" {
		t.Errorf("ParseRepo() = (%q, %q)", owner, name)
	}
}
