package checks

import (
	"context"
	"fmt"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

type FunctionNameCaseRule struct{}

func (r *FunctionNameCaseRule) ID() string {
	return "function-name-case"
}

func (r *FunctionNameCaseRule) Title() string {
	return "Function Names Are lowerCamelCase"
}

func (r *FunctionNameCaseRule) Description() string {
	return "Verifies that member and free function names use lowerCamelCase. " +
		"Free functions can be exempted via the profile's freeFunctions policy."
}

func (r *FunctionNameCaseRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	var results []rules.Result
	for _, id := range file.Identifiers {
		switch id.Category {
		case cxx.CatMemberFunction:
		case cxx.CatStaticFunction:
			if prof.FreeFunctions == profile.FreeFunctionsSkip {
				continue
			}
		default:
			continue
		}
		if rules.IsLowerCamelCase(id.Name) {
			continue
		}
		results = append(results, rules.Violation(file.Path, r.ID(), id,
			fmt.Sprintf("function name %q is not lowerCamelCase", id.Name)))
	}
	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

func init() {
	rules.Register(&FunctionNameCaseRule{})
}
