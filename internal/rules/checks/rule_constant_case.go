package checks

import (
	"context"
	"fmt"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

type ConstantCaseRule struct {
	enumerators string
}

func (r *ConstantCaseRule) ID() string {
	return "constant-case"
}

func (r *ConstantCaseRule) Title() string {
	return "Constants Are SCREAMING_SNAKE_CASE"
}

func (r *ConstantCaseRule) Description() string {
	return "Verifies that constants (#define, const, constexpr, static const) use " +
		"SCREAMING_SNAKE_CASE."
}

func (r *ConstantCaseRule) Options() []rules.Option {
	return []rules.Option{
		{
			Name:        "enumerators",
			Description: "How to treat enumerator names: screaming (check like constants) or skip.",
			Default:     "skip",
		},
	}
}

func (r *ConstantCaseRule) Configure(opts map[string]string) error {
	if val, ok := opts["enumerators"]; ok && val != "" {
		if val != "screaming" && val != "skip" {
			return fmt.Errorf("unsupported enumerators value %q (must be screaming or skip)", val)
		}
		r.enumerators = val
	}
	return nil
}

func (r *ConstantCaseRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	var results []rules.Result
	for _, id := range file.Identifiers {
		switch id.Category {
		case cxx.CatConstant:
		case cxx.CatEnumerator:
			if r.enumerators != "screaming" {
				continue
			}
		default:
			continue
		}
		if rules.IsScreamingSnakeCase(id.Name) {
			continue
		}
		results = append(results, rules.Violation(file.Path, r.ID(), id,
			fmt.Sprintf("constant %q is not SCREAMING_SNAKE_CASE", id.Name)))
	}
	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

func init() {
	rules.Register(&ConstantCaseRule{})
}
