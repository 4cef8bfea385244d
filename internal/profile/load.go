package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a custom profile from a YAML file and validates it.
// Fields omitted in the file take the zero value, so a custom profile
// must spell out every knob it relies on.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("read profile file: %v", err)}
	}

	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("parse profile file %s: %v", path, err)}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Resolve returns the active profile: a custom file when filePath is set,
// otherwise the named built-in (or the default when name is empty).
func Resolve(name, filePath string) (*Profile, error) {
	if filePath != "" {
		return Load(filePath)
	}
	if name == "" {
		name = DefaultName
	}
	return Builtin(name)
}
