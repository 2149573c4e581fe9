package team

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk YAML shape.
type rosterFile struct {
	Teams []string `yaml:"teams"`
}

// LoadFile reads a YAML roster file and expands environment variables.
// An empty roster falls back to the built-in default.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read roster file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	var rf rosterFile
	if err := yaml.Unmarshal([]byte(expanded), &rf); err != nil {
		return Set{}, fmt.Errorf("parse roster yaml: %w", err)
	}

	if len(rf.Teams) == 0 {
		return Default(), nil
	}

	if err := rf.validate(); err != nil {
		return Set{}, fmt.Errorf("validate roster: %w", err)
	}

	return NewSet(rf.Teams...), nil
}

// validate checks that every roster entry is non-empty and unique.
func (rf *rosterFile) validate() error {
	seen := make(map[string]struct{}, len(rf.Teams))
	for i, name := range rf.Teams {
		if name == "" {
			return fmt.Errorf("teams[%d] must not be empty", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("teams[%d] duplicates %q", i, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
