package checks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

// includeGroup is the provenance partition of an include directive.
// Numeric order is the mandated relative order under the 4-group scheme.
type includeGroup int

const (
	groupSelf includeGroup = iota
	groupSystem
	groupThirdParty
	groupProject
)

func (g includeGroup) String() string {
	switch g {
	case groupSelf:
		return "self"
	case groupSystem:
		return "system"
	case groupThirdParty:
		return "third-party"
	default:
		return "project"
	}
}

type IncludeOrderRule struct {
	lexicographic string
}

func (r *IncludeOrderRule) ID() string {
	return "include-group-order"
}

func (r *IncludeOrderRule) Title() string {
	return "Includes Are Grouped And Ordered"
}

func (r *IncludeOrderRule) Description() string {
	return "Verifies that include groups appear in order (self if source file, " +
		"then system, third-party, project) with no interleaving, and that " +
		"includes within a group are sorted when the profile requires it."
}

func (r *IncludeOrderRule) Options() []rules.Option {
	return []rules.Option{
		{
			Name:        "lexicographic",
			Description: "Intra-group ordering: profile (follow the active profile), require, or ignore.",
			Default:     "profile",
		},
	}
}

func (r *IncludeOrderRule) Configure(opts map[string]string) error {
	if val, ok := opts["lexicographic"]; ok && val != "" {
		switch val {
		case "profile", "require", "ignore":
			r.lexicographic = val
		default:
			return fmt.Errorf("unsupported lexicographic value %q (must be profile, require, or ignore)", val)
		}
	}
	return nil
}

func (r *IncludeOrderRule) requireSorted(prof *profile.Profile) bool {
	switch r.lexicographic {
	case "require":
		return true
	case "ignore":
		return false
	default:
		return prof.LexicographicIncludes
	}
}

func (r *IncludeOrderRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	var results []rules.Result

	maxGroup := includeGroup(-1)
	prevGroup := includeGroup(-1)
	prevPath := ""
	sorted := r.requireSorted(prof)

	for _, inc := range file.Includes {
		g := classifyInclude(inc, file.Path, prof.IncludeGroups)

		if rank(g, prof.IncludeGroups) < rank(maxGroup, prof.IncludeGroups) {
			results = append(results, rules.IncludeViolation(file.Path, r.ID(), inc,
				fmt.Sprintf("%s include %q appears after a %s include", g, inc.Path, maxGroup)))
		} else {
			maxGroup = g
		}

		if sorted && g == prevGroup && inc.Path < prevPath {
			results = append(results, rules.IncludeViolation(file.Path, r.ID(), inc,
				fmt.Sprintf("include %q is not in lexicographic order within its group", inc.Path)))
		}
		prevGroup = g
		prevPath = inc.Path
	}

	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

// classifyInclude partitions an include directive by provenance:
// quoted include of the matching header in a source file is the
// self-include (4-group scheme only); angle brackets without a path
// component are system/standard; angle brackets with a path component
// are third-party; remaining quoted includes are project-local.
func classifyInclude(inc cxx.Include, filePath string, groups int) includeGroup {
	if !inc.Angle {
		if groups == 4 && isSelfInclude(inc.Path, filePath) {
			return groupSelf
		}
		return groupProject
	}
	if strings.Contains(inc.Path, "/") {
		return groupThirdParty
	}
	return groupSystem
}

func isSelfInclude(incPath, filePath string) bool {
	ext := strings.ToLower(path.Ext(filePath))
	switch ext {
	case ".cpp", ".cc", ".cxx", ".c":
	default:
		return false // only source files have a self-include
	}
	stem := func(p string) string {
		base := path.Base(p)
		return strings.TrimSuffix(base, path.Ext(base))
	}
	return stem(incPath) == stem(filePath)
}

// rank maps a group to its mandated position under the profile's
// grouping scheme. The 3-group scheme has no self group; the matching
// header sorts with the rest of the project includes.
func rank(g includeGroup, groups int) int {
	if g < 0 {
		return -1
	}
	if groups == 4 {
		return int(g)
	}
	switch g {
	case groupSystem:
		return 0
	case groupThirdParty:
		return 1
	default:
		return 2
	}
}

func init() {
	rules.Register(&IncludeOrderRule{})
}
