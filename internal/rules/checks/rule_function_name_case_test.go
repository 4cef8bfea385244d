package checks

import (
	"context"
	"testing"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
)

func TestFunctionNameCaseRule_MemberAndFreeTreatedAlike(t *testing.T) {
	rule := &FunctionNameCaseRule{}
	file := fileWith(
		cxx.Identifier{Name: "SetOrigin", Category: cxx.CatMemberFunction, Line: 3},
		cxx.Identifier{Name: "Flatten", Category: cxx.CatStaticFunction, Line: 8},
		cxx.Identifier{Name: "interpolate", Category: cxx.CatStaticFunction, Line: 9},
	)

	results, err := rule.Evaluate(context.Background(), file, prof(t, "vc-hpp"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got := len(failures(results)); got != 2 {
		t.Fatalf("got %d failures, want 2: %+v", got, results)
	}
}

func TestFunctionNameCaseRule_FreeFunctionsSkipPolicy(t *testing.T) {
	rule := &FunctionNameCaseRule{}
	p := prof(t, "vc-hpp")
	p.FreeFunctions = profile.FreeFunctionsSkip

	file := fileWith(
		cxx.Identifier{Name: "Flatten", Category: cxx.CatStaticFunction, Line: 8},
		cxx.Identifier{Name: "SetOrigin", Category: cxx.CatMemberFunction, Line: 3},
	)
	results, err := rule.Evaluate(context.Background(), file, p)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	fails := failures(results)
	if len(fails) != 1 {
		t.Fatalf("got %d failures, want 1: %+v", len(fails), results)
	}
	if fails[0].Identifier != "SetOrigin" {
		t.Errorf("flagged %q, want SetOrigin", fails[0].Identifier)
	}
}
