package checks

import (
	"context"
	"testing"

	"cppstyle/internal/cxx"
	"cppstyle/internal/rules"
)

func TestClassNameCaseRule_Evaluate(t *testing.T) {
	rule := &ClassNameCaseRule{}

	tests := []struct {
		name      string
		ids       []cxx.Identifier
		wantFails int
	}{
		{
			name:      "lowercase start flagged",
			ids:       []cxx.Identifier{{Name: "uvMap", Category: cxx.CatClass, Line: 4}},
			wantFails: 1,
		},
		{
			name:      "underscore flagged",
			ids:       []cxx.Identifier{{Name: "UV_Map", Category: cxx.CatClass, Line: 4}},
			wantFails: 1,
		},
		{
			name:      "conforming name passes",
			ids:       []cxx.Identifier{{Name: "UVMap", Category: cxx.CatClass, Line: 4}},
			wantFails: 0,
		},
		{
			name:      "other categories ignored",
			ids:       []cxx.Identifier{{Name: "uv_map", Category: cxx.CatLocalVariable, Line: 4}},
			wantFails: 0,
		},
		{
			name:      "empty file passes",
			wantFails: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := rule.Evaluate(context.Background(), fileWith(tt.ids...), prof(t, "vc-hpp"))
			if err != nil {
				t.Fatalf("Evaluate returned error: %v", err)
			}
			fails := failures(results)
			if len(fails) != tt.wantFails {
				t.Fatalf("got %d failures, want %d: %+v", len(fails), tt.wantFails, results)
			}
			if tt.wantFails == 0 && len(results) != 1 {
				t.Fatalf("expected single PASS/SKIP result, got %+v", results)
			}
		})
	}
}

func TestClassNameCaseRule_ViolationDetail(t *testing.T) {
	// Scenario: class declared as uvMap under a profile requiring
	// UpperCamelCase classes yields exactly one ClassName violation.
	rule := &ClassNameCaseRule{}
	id := cxx.Identifier{Name: "uvMap", Category: cxx.CatClass, Line: 12, Column: 7}

	results, err := rule.Evaluate(context.Background(), fileWith(id), prof(t, "vc-hpp"))
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	res := results[0]
	if res.Status != rules.StatusFail {
		t.Fatalf("status = %s, want FAIL", res.Status)
	}
	if res.Category != string(cxx.CatClass) {
		t.Errorf("category = %q, want ClassName", res.Category)
	}
	if res.Line != 12 || res.Column != 7 {
		t.Errorf("position = %d:%d, want 12:7", res.Line, res.Column)
	}
	if res.Identifier != "uvMap" {
		t.Errorf("identifier = %q, want uvMap", res.Identifier)
	}
}
