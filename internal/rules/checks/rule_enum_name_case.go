package checks

import (
	"context"
	"fmt"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

type EnumNameCaseRule struct{}

func (r *EnumNameCaseRule) ID() string {
	return "enum-name-case"
}

func (r *EnumNameCaseRule) Title() string {
	return "Enum Names Are UpperCamelCase"
}

func (r *EnumNameCaseRule) Description() string {
	return "Verifies that enum type names use UpperCamelCase."
}

func (r *EnumNameCaseRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	var results []rules.Result
	for _, id := range file.Identifiers {
		if id.Category != cxx.CatEnum {
			continue
		}
		if rules.IsUpperCamelCase(id.Name) {
			continue
		}
		results = append(results, rules.Violation(file.Path, r.ID(), id,
			fmt.Sprintf("enum name %q is not UpperCamelCase", id.Name)))
	}
	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

func init() {
	rules.Register(&EnumNameCaseRule{})
}
