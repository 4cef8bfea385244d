package profile

import (
	"fmt"
	"sort"
)

// Built-in profiles mirror the documented guide variants.
var builtins = map[string]Profile{
	// The older guide: three include groups, leading-underscore members,
	// public members tolerated.
	"legacy": {
		Name:                  "legacy",
		IncludeGroups:         3,
		MemberMarker:          MarkerLeading,
		AllowPublicMembers:    true,
		LexicographicIncludes: false,
		FreeFunctions:         FreeFunctionsSame,
	},
	// The header-centric guide: four include groups starting with the
	// self-include, trailing-underscore privates, no public members,
	// sorted includes within each group.
	"vc-hpp": {
		Name:                  "vc-hpp",
		IncludeGroups:         4,
		MemberMarker:          MarkerTrailing,
		AllowPublicMembers:    false,
		LexicographicIncludes: true,
		FreeFunctions:         FreeFunctionsSame,
	},
	// The DRI guide: same structure as vc-hpp but intra-group include
	// order is advisory.
	"dri": {
		Name:                  "dri",
		IncludeGroups:         4,
		MemberMarker:          MarkerTrailing,
		AllowPublicMembers:    false,
		LexicographicIncludes: false,
		FreeFunctions:         FreeFunctionsSame,
	},
}

// DefaultName is the profile used when none is selected.
const DefaultName = "vc-hpp"

// Builtin returns a copy of the named built-in profile.
func Builtin(name string) (*Profile, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, &ConfigError{Profile: name, Reason: fmt.Sprintf("unknown profile (available: %v)", BuiltinNames())}
	}
	return &p, nil
}

// BuiltinNames lists the built-in profile names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
