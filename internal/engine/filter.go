package engine

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"cppstyle/internal/config"
	"cppstyle/internal/source"
)

// FilterFiles applies include/exclude patterns and the max-files cap to the
// discovered file set. Patterns use doublestar syntax and match against the
// slash-separated display path.
func FilterFiles(refs []source.FileRef, cfg *config.Config) []source.FileRef {
	if cfg == nil {
		panic("engine.FilterFiles: cfg must not be nil")
	}

	includePatterns := cfg.Targeting.Include
	excludePatterns := cfg.Targeting.Exclude

	var filtered []source.FileRef
	for _, r := range refs {
		// If Include is set, must match at least one
		if len(includePatterns) > 0 && !matchesAnyPattern(includePatterns, r.Path) {
			continue
		}
		// If Exclude is set, must not match any
		if len(excludePatterns) > 0 && matchesAnyPattern(excludePatterns, r.Path) {
			continue
		}
		filtered = append(filtered, r)
	}

	if cfg.Targeting.MaxFiles > 0 && len(filtered) > cfg.Targeting.MaxFiles {
		filtered = filtered[:cfg.Targeting.MaxFiles]
	}

	return filtered
}

func matchesAnyPattern(patterns []string, path string) bool {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if matched, err := doublestar.Match(p, path); err == nil && matched {
			return true
		}
		// A bare pattern without a separator also matches the basename so
		// patterns like "*.hpp" work against nested paths.
		if !strings.Contains(p, "/") {
			base := path
			if idx := strings.LastIndex(path, "/"); idx >= 0 {
				base = path[idx+1:]
			}
			if matched, err := doublestar.Match(p, base); err == nil && matched {
				return true
			}
		}
	}
	return false
}
