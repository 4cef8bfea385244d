package checks

import (
	"context"
	"testing"

	"cppstyle/internal/cxx"
	"cppstyle/internal/rules"
)

func TestConstantCaseRule_Evaluate(t *testing.T) {
	rule := &ConstantCaseRule{}

	tests := []struct {
		name      string
		ids       []cxx.Identifier
		wantFails int
	}{
		{
			// Scenario: constant declared as MaxSize under the
			// SCREAMING_SNAKE_CASE rule yields one violation.
			name:      "camel constant flagged",
			ids:       []cxx.Identifier{{Name: "MaxSize", Category: cxx.CatConstant, Line: 2}},
			wantFails: 1,
		},
		{
			name:      "screaming constant passes",
			ids:       []cxx.Identifier{{Name: "MAX_SIZE", Category: cxx.CatConstant, Line: 2}},
			wantFails: 0,
		},
		{
			name: "mixed set flags only offenders",
			ids: []cxx.Identifier{
				{Name: "MAX_RETRIES", Category: cxx.CatConstant, Line: 1},
				{Name: "defaultSize", Category: cxx.CatConstant, Line: 2},
				{Name: "TIMEOUT_MS", Category: cxx.CatConstant, Line: 3},
			},
			wantFails: 1,
		},
		{
			name:      "enumerators skipped by default",
			ids:       []cxx.Identifier{{Name: "Nearest", Category: cxx.CatEnumerator, Line: 5}},
			wantFails: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := rule.Evaluate(context.Background(), fileWith(tt.ids...), prof(t, "vc-hpp"))
			if err != nil {
				t.Fatalf("Evaluate returned error: %v", err)
			}
			if got := len(failures(results)); got != tt.wantFails {
				t.Fatalf("got %d failures, want %d: %+v", got, tt.wantFails, results)
			}
		})
	}
}

func TestConstantCaseRule_EnumeratorsOption(t *testing.T) {
	rule := &ConstantCaseRule{}
	if err := rule.Configure(map[string]string{"enumerators": "screaming"}); err != nil {
		t.Fatal(err)
	}

	file := fileWith(cxx.Identifier{Name: "Nearest", Category: cxx.CatEnumerator, Line: 5})
	results, err := rule.Evaluate(context.Background(), file, prof(t, "vc-hpp"))
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if got := len(failures(results)); got != 1 {
		t.Fatalf("got %d failures, want 1: %+v", got, results)
	}

	if err := rule.Configure(map[string]string{"enumerators": "sometimes"}); err == nil {
		t.Fatal("expected error for unsupported option value")
	}
}

func TestConstantCaseRule_RegisteredWithOptions(t *testing.T) {
	selected, err := rules.Resolve("constant-case")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	cr, ok := selected[0].(rules.ConfigurableRule)
	if !ok {
		t.Fatal("constant-case should be configurable")
	}
	var found bool
	for _, opt := range cr.Options() {
		if opt.Name == "enumerators" {
			found = true
		}
	}
	if !found {
		t.Error("enumerators option not exposed")
	}
}
