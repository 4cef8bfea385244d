// Package profile defines style-guide variants. The documented guides
// disagree on member-variable markers, include grouping, and public-member
// allowance, so the active variant is explicit configuration passed into
// every check call rather than a baked-in default.
package profile

import (
	"errors"
	"fmt"
)

// Marker is the underscore position expected on private member variables.
type Marker string

const (
	MarkerLeading  Marker = "leading_underscore"
	MarkerTrailing Marker = "trailing_underscore"
)

// FreeFunctionPolicy controls whether free functions share the member
// function casing expectation. The source guides are not explicit, so
// this is configuration rather than a guess.
type FreeFunctionPolicy string

const (
	FreeFunctionsSame FreeFunctionPolicy = "same"
	FreeFunctionsSkip FreeFunctionPolicy = "skip"
)

// Profile is one consistent set of naming and ordering rules. Profiles
// are immutable after Validate and safe for concurrent readers.
type Profile struct {
	Name string `yaml:"name"`

	// IncludeGroups is 3 (system < third-party < project) or
	// 4 (self < system < third-party < project).
	IncludeGroups int `yaml:"includeGroups"`

	// MemberMarker is the underscore convention for private members.
	MemberMarker Marker `yaml:"memberVarMarker"`

	// AllowPublicMembers permits public member variables. When false,
	// every public member variable is flagged unconditionally.
	AllowPublicMembers bool `yaml:"allowPublicMembers"`

	// LexicographicIncludes requires includes within a group to be
	// sorted. When false, group ordering is still enforced but
	// intra-group order is advisory.
	LexicographicIncludes bool `yaml:"requireLexicographicIncludeOrder"`

	// FreeFunctions controls casing checks on free functions.
	FreeFunctions FreeFunctionPolicy `yaml:"freeFunctions"`
}

// ConfigError reports a missing or internally contradictory profile.
// It is fatal: the run aborts before any file is processed.
type ConfigError struct {
	Profile string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Profile != "" {
		return fmt.Sprintf("profile %q: %s", e.Profile, e.Reason)
	}
	return fmt.Sprintf("profile configuration: %s", e.Reason)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func (p *Profile) Validate() error {
	if p == nil {
		return &ConfigError{Reason: "profile is nil"}
	}
	if p.Name == "" {
		return &ConfigError{Reason: "profile name is required"}
	}
	if p.IncludeGroups != 3 && p.IncludeGroups != 4 {
		return &ConfigError{Profile: p.Name, Reason: fmt.Sprintf("includeGroups must be 3 or 4, got %d", p.IncludeGroups)}
	}
	switch p.MemberMarker {
	case MarkerLeading, MarkerTrailing:
	default:
		return &ConfigError{Profile: p.Name, Reason: fmt.Sprintf("memberVarMarker must be %q or %q, got %q", MarkerLeading, MarkerTrailing, p.MemberMarker)}
	}
	switch p.FreeFunctions {
	case FreeFunctionsSame, FreeFunctionsSkip:
	case "":
		p.FreeFunctions = FreeFunctionsSame
	default:
		return &ConfigError{Profile: p.Name, Reason: fmt.Sprintf("freeFunctions must be %q or %q, got %q", FreeFunctionsSame, FreeFunctionsSkip, p.FreeFunctions)}
	}
	return nil
}
