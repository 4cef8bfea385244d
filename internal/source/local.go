package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// LocalSource reads C++ files from the local filesystem.
//
// Each root may be a file, a directory (walked recursively), or a
// doublestar glob pattern such as "src/**/*.hpp".
type LocalSource struct {
	Roots []string
}

func NewLocalSource(roots []string) (*LocalSource, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("at least one path required")
	}
	return &LocalSource{Roots: roots}, nil
}

func (s *LocalSource) Discover(ctx context.Context) ([]FileRef, error) {
	seen := make(map[string]bool)
	var refs []FileRef

	add := func(path string) {
		clean := filepath.ToSlash(filepath.Clean(path))
		if seen[clean] {
			return
		}
		seen[clean] = true
		refs = append(refs, FileRef{Path: clean})
	}

	for _, root := range s.Roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if isGlobPattern(root) {
			matches, err := doublestar.FilepathGlob(root)
			if err != nil {
				return nil, fmt.Errorf("invalid path pattern %q: %w", root, err)
			}
			for _, m := range matches {
				if info, err := os.Stat(m); err == nil && !info.IsDir() && IsCXXFile(m) {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", root, err)
		}
		if !info.IsDir() {
			if IsCXXFile(root) {
				add(root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if d.IsDir() {
				// Skip hidden directories (.git and friends), but never the
				// root itself even if its name starts with a dot.
				if name := d.Name(); path != root && len(name) > 1 && name[0] == '.' {
					return fs.SkipDir
				}
				return nil
			}
			if IsCXXFile(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", root, err)
		}
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })
	return refs, nil
}

func (s *LocalSource) Read(ctx context.Context, ref FileRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.FromSlash(ref.Path))
}

func isGlobPattern(path string) bool {
	for _, r := range path {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
