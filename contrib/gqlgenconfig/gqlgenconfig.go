// Package gqlgenconfig reads gqlgen.yml-style configuration files so a
// project that already maintains scalar bindings for a Go-side gqlgen
// server can reuse the same file to drive this module's scalar mappings,
// instead of hand-duplicating them as gen.WithScalarMapping literals.
package gqlgenconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gqlselect/gqlselect/gen"
)

// GQLGenConfig represents the subset of gqlgen.yml this module consults:
// the model bindings that name a target type for each GraphQL scalar.
type GQLGenConfig struct {
	// Models maps a GraphQL type name to its model configuration. Entries
	// are not filtered by kind: ScalarMappings passes on every entry that
	// binds a model, so an enum entry redirects that enum as well.
	Models map[string]TypeMapEntry `yaml:"models,omitempty"`
}

// TypeMapEntry is the configuration for a single GraphQL type.
type TypeMapEntry struct {
	// Model is the target type this GraphQL scalar maps to. Only the first
	// entry is used; gqlgen.yml allows a list for Go union/alias purposes
	// that don't apply here.
	Model []string `yaml:"model,omitempty"`
}

// Load reads a gqlgen.yml configuration file. A missing file is not an
// error — it returns an empty configuration, since scalar mappings are
// optional input.
func Load(path string) (*GQLGenConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GQLGenConfig{Models: make(map[string]TypeMapEntry)}, nil
		}
		return nil, fmt.Errorf("gqlgenconfig: read %s: %w", path, err)
	}

	var cfg GQLGenConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("gqlgenconfig: parse %s: %w", path, err)
	}
	if cfg.Models == nil {
		cfg.Models = make(map[string]TypeMapEntry)
	}
	return &cfg, nil
}

// ScalarMappings reduces the configuration's model bindings to the
// name→target-type map gen.WithScalarMapping expects, dropping any entry
// with no model bound.
func (c *GQLGenConfig) ScalarMappings() map[string]string {
	out := make(map[string]string, len(c.Models))
	for name, entry := range c.Models {
		if len(entry.Model) == 0 {
			continue
		}
		out[name] = entry.Model[0]
	}
	return out
}

// Option returns a gen.Option that applies this configuration's scalar
// mappings, for splicing into a gen.Write call alongside other options:
//
//	cfg, err := gqlgenconfig.Load("gqlgen.yml")
//	sources, err := gen.Write(doc, cfg.Option(), gen.WithSplitFiles(true))
func (c *GQLGenConfig) Option() gen.Option {
	return gen.WithScalarMapping(c.ScalarMappings())
}
