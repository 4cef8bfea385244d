package checks

import (
	"context"
	"fmt"

	"cppstyle/internal/cxx"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
)

type MemberVariableMarkerRule struct{}

func (r *MemberVariableMarkerRule) ID() string {
	return "member-variable-marker"
}

func (r *MemberVariableMarkerRule) Title() string {
	return "Private Members Carry The Underscore Marker"
}

func (r *MemberVariableMarkerRule) Description() string {
	return "Verifies that private member variables are lowerCamelCase with the " +
		"profile's underscore marker (leading or trailing)."
}

func (r *MemberVariableMarkerRule) Evaluate(ctx context.Context, file *cxx.SourceFile, prof *profile.Profile) ([]rules.Result, error) {
	var results []rules.Result
	for _, id := range file.Identifiers {
		if id.Category != cxx.CatPrivateMember {
			continue
		}
		if rules.IsMarkedMember(id.Name, prof.MemberMarker) {
			continue
		}
		results = append(results, rules.Violation(file.Path, r.ID(), id,
			fmt.Sprintf("private member %q does not match lowerCamelCase with %s", id.Name, markerLabel(prof.MemberMarker))))
	}
	if len(results) == 0 {
		return []rules.Result{rules.PassResult(file.Path, r.ID())}, nil
	}
	return results, nil
}

func markerLabel(m profile.Marker) string {
	if m == profile.MarkerLeading {
		return "a leading underscore"
	}
	return "a trailing underscore"
}

func init() {
	rules.Register(&MemberVariableMarkerRule{})
}
