package rules

import (
	"context"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
)

// AllowListWrapper wraps a Rule to provide automatic suppression support.
type AllowListWrapper struct {
	Rule
	allowList AllowList
}

// ID returns the inner rule's ID.
func (w *AllowListWrapper) ID() string {
	return w.Rule.ID()
}

// Title returns the inner rule's Title.
func (w *AllowListWrapper) Title() string {
	return w.Rule.Title()
}

// Description returns the inner rule's Description.
func (w *AllowListWrapper) Description() string {
	return w.Rule.Description()
}

// Evaluate calls the inner rule's Evaluate and then applies the
// suppression logic to every finding.
func (w *AllowListWrapper) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]Result, error) {
	results, err := w.Rule.Evaluate(ctx, file, prof)
	if err != nil {
		return results, err
	}
	for i, res := range results {
		results[i] = w.allowList.CheckResult(res)
	}
	return results, nil
}

// Options returns the combined options of the allowlist and the inner rule (if configurable).
func (w *AllowListWrapper) Options() []Option {
	opts := w.allowList.Options()
	if cr, ok := w.Rule.(ConfigurableRule); ok {
		opts = append(opts, cr.Options()...)
	}
	return opts
}

// Configure configures the allowlist and the inner rule (if configurable).
func (w *AllowListWrapper) Configure(opts map[string]string) error {
	w.allowList.Configure(opts)
	if cr, ok := w.Rule.(ConfigurableRule); ok {
		return cr.Configure(opts)
	}
	return nil
}
