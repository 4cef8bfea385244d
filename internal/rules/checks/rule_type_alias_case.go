package checks

import (
	"context"
	"fmt"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

type TypeAliasCaseRule struct{}

func (r *TypeAliasCaseRule) ID() string {
	return "type-alias-case"
}

func (r *TypeAliasCaseRule) Title() string {
	return "Type Aliases Are UpperCamelCase"
}

func (r *TypeAliasCaseRule) Description() string {
	return "Verifies that using-aliases and typedefs use UpperCamelCase."
}

func (r *TypeAliasCaseRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	var results []rules.Result
	for _, id := range file.Identifiers {
		if id.Category != cxx.CatTypeAlias {
			continue
		}
		if rules.IsUpperCamelCase(id.Name) {
			continue
		}
		results = append(results, rules.Violation(file.Path, r.ID(), id,
			fmt.Sprintf("type alias %q is not UpperCamelCase", id.Name)))
	}
	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

func init() {
	rules.Register(&TypeAliasCaseRule{})
}
