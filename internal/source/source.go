// Package source discovers and reads C++ files to check, from the local
// filesystem or from a GitHub repository.
package source

import (
	"context"
	"path/filepath"
	"strings"
)

// FileRef identifies a single discoverable C++ file.
type FileRef struct {
	// Path is the display path, relative to the checked root or repository.
	Path string
	// SHA is the git blob SHA for remote files; empty for local files.
	SHA string
}

// Source enumerates C++ files and reads their contents.
type Source interface {
	Discover(ctx context.Context) ([]FileRef, error)
	Read(ctx context.Context, ref FileRef) ([]byte, error)
}

var cxxExtensions = map[string]bool{
	".hpp": true,
	".hxx": true,
	".hh":  true,
	".h":   true,
	".cpp": true,
	".cxx": true,
	".cc":  true,
	".c":   true,
}

// IsCXXFile reports whether path has a recognized C or C++ extension.
func IsCXXFile(path string) bool {
	return cxxExtensions[strings.ToLower(filepath.Ext(path))]
}
