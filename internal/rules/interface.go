package rules

import (
	"context"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
)

type Rule interface {
	ID() string
	Title() string
	Description() string

	// Evaluate checks one extracted file against the active profile.
	// A rule returns one FAIL result per finding, or a single PASS
	// result when everything it covers conforms. Rules never mutate
	// the file or the profile.
	Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]Result, error)
}

type Option struct {
	Name        string
	Description string
	Default     string
}

type ConfigurableRule interface {
	Rule
	Options() []Option
	Configure(opts map[string]string) error
}
