package checks

import (
	"context"
	"testing"

	"cppstyle/internal/cxx"
	"cppstyle/internal/rules"
)

func TestPublicMemberVariablesRule_ForbiddenProfile(t *testing.T) {
	rule := &PublicMemberVariablesRule{}
	file := fileWith(
		cxx.Identifier{Name: "originCount", Category: cxx.CatPublicMember, Line: 4},
		cxx.Identifier{Name: "origin_", Category: cxx.CatPrivateMember, Line: 6},
	)

	results, err := rule.Evaluate(context.Background(), file, prof(t, "vc-hpp"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	fails := failures(results)
	if len(fails) != 1 {
		t.Fatalf("got %d failures, want 1: %+v", len(fails), results)
	}
	if fails[0].Identifier != "originCount" {
		t.Errorf("flagged %q, want originCount", fails[0].Identifier)
	}
}

func TestPublicMemberVariablesRule_AllowedProfileSkips(t *testing.T) {
	rule := &PublicMemberVariablesRule{}
	file := fileWith(cxx.Identifier{Name: "originCount", Category: cxx.CatPublicMember, Line: 4})

	results, err := rule.Evaluate(context.Background(), file, prof(t, "legacy"))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(results) != 1 || results[0].Status != rules.StatusSkipped {
		t.Fatalf("expected single SKIPPED result, got %+v", results)
	}
}
