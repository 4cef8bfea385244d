package rules

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// AllowList handles common suppression logic for rules.
// It supports allowing findings by file glob (doublestar patterns, e.g.
// third_party/** or generated code) and by exact identifier name (for
// grandfathered legacy names).
type AllowList struct {
	Files       []string
	Identifiers map[string]bool
}

// Options returns the standard configuration options for suppression.
func (a *AllowList) Options() []Option {
	return []Option{
		{
			Name:        "allow.files",
			Description: "Comma-separated list of file glob patterns whose findings are suppressed (e.g. third_party/**, **/*_generated.hpp).",
		},
		{
			Name:        "allow.identifiers",
			Description: "Comma-separated list of identifier names whose findings are suppressed (exact match).",
		},
	}
}

// Configure parses the configuration options to populate the AllowList.
func (a *AllowList) Configure(opts map[string]string) {
	a.Files = nil
	a.Identifiers = make(map[string]bool)

	if val, ok := opts["allow.files"]; ok && val != "" {
		for _, s := range strings.Split(val, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				a.Files = append(a.Files, s)
			}
		}
	}

	if val, ok := opts["allow.identifiers"]; ok && val != "" {
		for _, s := range strings.Split(val, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				a.Identifiers[s] = true
			}
		}
	}
}

// IsAllowed checks if the finding is suppressed by any of the configured
// entries. It returns true and a reason string if allowed.
func (a *AllowList) IsAllowed(res Result) (bool, string) {
	for _, pattern := range a.Files {
		if matched, _ := doublestar.Match(pattern, res.File); matched {
			return true, "allow.files"
		}
	}
	if res.Identifier != "" && a.Identifiers[res.Identifier] {
		return true, "allow.identifiers"
	}
	return false, ""
}

// CheckResult evaluates the result and applies the suppression logic.
// If the result is a failure and the finding is allowed, it converts the
// result to a pass.
func (a *AllowList) CheckResult(result Result) Result {
	if result.Status == StatusFail {
		if allowed, reason := a.IsAllowed(result); allowed {
			res := NewResult(result.File, result.RuleID, StatusPass, fmt.Sprintf("Allowed failure: %s (Allowed by policy: %s)", result.Message, reason))
			res.Line = result.Line
			res.Identifier = result.Identifier
			return res
		}
	}
	return result
}
