package checks

import (
	"context"
	"fmt"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

type LocalVariableCaseRule struct{}

func (r *LocalVariableCaseRule) ID() string {
	return "local-variable-case"
}

func (r *LocalVariableCaseRule) Title() string {
	return "Local Variables Are lowerCamelCase"
}

func (r *LocalVariableCaseRule) Description() string {
	return "Verifies that local variable names use lowerCamelCase."
}

func (r *LocalVariableCaseRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	var results []rules.Result
	for _, id := range file.Identifiers {
		if id.Category != cxx.CatLocalVariable {
			continue
		}
		if rules.IsLowerCamelCase(id.Name) {
			continue
		}
		results = append(results, rules.Violation(file.Path, r.ID(), id,
			fmt.Sprintf("local variable %q is not lowerCamelCase", id.Name)))
	}
	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

func init() {
	rules.Register(&LocalVariableCaseRule{})
}
