package checks

import (
	"context"
	"fmt"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

type PublicMemberVariablesRule struct{}

func (r *PublicMemberVariablesRule) ID() string {
	return "public-member-variables"
}

func (r *PublicMemberVariablesRule) Title() string {
	return "No Public Member Variables"
}

func (r *PublicMemberVariablesRule) Description() string {
	return "Flags public member variables unconditionally under profiles that " +
		"forbid them; skipped under profiles that allow them."
}

func (r *PublicMemberVariablesRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	if prof.AllowPublicMembers {
		return []rules.Result{rules.SkippedResult(file.Path, r.ID(), "profile allows public member variables")}, nil
	}

	var results []rules.Result
	for _, id := range file.Identifiers {
		if id.Category != cxx.CatPublicMember {
			continue
		}
		results = append(results, rules.Violation(file.Path, r.ID(), id,
			fmt.Sprintf("public member variable %q is not allowed; use an accessor", id.Name)))
	}
	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

func init() {
	rules.Register(&PublicMemberVariablesRule{})
}
