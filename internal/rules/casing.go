package rules

import (
	"strings"
	"unicode"

	"cppstyle/internal/profile"
)

// Casing predicates shared by the naming rules. These implement the
// mechanically checkable reading of the guides: UpperCamelCase fails
// exactly when the name contains an underscore or starts with a
// lowercase letter, and SCREAMING_SNAKE_CASE fails exactly when the
// name contains a lowercase letter.

func IsUpperCamelCase(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsRune(name, '_') {
		return false
	}
	first := []rune(name)[0]
	return unicode.IsUpper(first)
}

func IsLowerCamelCase(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsRune(name, '_') {
		return false
	}
	first := []rune(name)[0]
	return unicode.IsLower(first)
}

func IsScreamingSnakeCase(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// IsMarkedMember checks a private member variable name against the
// profile's underscore marker: the marker must be present and the
// remaining stem must be lowerCamelCase.
func IsMarkedMember(name string, marker profile.Marker) bool {
	switch marker {
	case profile.MarkerLeading:
		stem, ok := strings.CutPrefix(name, "_")
		return ok && IsLowerCamelCase(stem)
	case profile.MarkerTrailing:
		stem, ok := strings.CutSuffix(name, "_")
		return ok && IsLowerCamelCase(stem)
	default:
		return false
	}
}
