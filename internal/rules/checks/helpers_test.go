package checks

import (
	"testing"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

func prof(t *testing.T, name string) *profile.Profile {
	t.Helper()
	p, err := profile.Builtin(name)
	if err != nil {
		t.Fatalf("Builtin(%q): %v", name, err)
	}
	return p
}

func fileWith(ids ...cxx.Identifier) *cxx.SourceFile {
	return &cxx.SourceFile{Path: "src/Test.hpp", Identifiers: ids}
}

func failures(results []rules.Result) []rules.Result {
	var out []rules.Result
	for _, r := range results {
		if r.Status == rules.StatusFail {
			out = append(out, r)
		}
	}
	return out
}
