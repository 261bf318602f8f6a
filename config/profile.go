// Package config loads dialect profiles: named bundles of
// dialect.Flags capability booleans declared as YAML, so cmd/sqlfmt
// users can point at a profile file instead of hand-assembling flags.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/polysql/sqlparser/dialect"
)

// Profile is one named capability bundle, as written in a
// profiles/*.yaml document.
type Profile struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Flags       dialect.Flags `yaml:"flags"`
}

// LoadProfile reads and unmarshals a Profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read profile %q", path)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "config: parse profile %q", path)
	}
	return &p, nil
}

// Dialect builds a dialect.Generic carrying this profile's flags.
func (p *Profile) Dialect() dialect.Generic {
	return dialect.NewGeneric(p.Flags)
}
