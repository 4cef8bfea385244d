package checks

import (
	"context"
	"fmt"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

type ClassNameCaseRule struct{}

func (r *ClassNameCaseRule) ID() string {
	return "class-name-case"
}

func (r *ClassNameCaseRule) Title() string {
	return "Class Names Are UpperCamelCase"
}

func (r *ClassNameCaseRule) Description() string {
	return "Verifies that class and struct names use UpperCamelCase."
}

func (r *ClassNameCaseRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	var results []rules.Result
	for _, id := range file.Identifiers {
		if id.Category != cxx.CatClass {
			continue
		}
		if rules.IsUpperCamelCase(id.Name) {
			continue
		}
		results = append(results, rules.Violation(file.Path, r.ID(), id,
			fmt.Sprintf("class name %q is not UpperCamelCase", id.Name)))
	}
	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

func init() {
	rules.Register(&ClassNameCaseRule{})
}
