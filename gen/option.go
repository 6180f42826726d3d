package gen

import "maps"

// Option configures a Config using the functional-options pattern.
type Option func(*Config)

// WithScalarMapping registers a GraphQL scalar (or enum) name → target type
// expression mapping. Calling it more than once merges mappings; later
// calls override earlier ones for the same name.
func WithScalarMapping(mappings map[string]string) Option {
	return func(c *Config) {
		if c.ScalarMappings == nil {
			c.ScalarMappings = make(map[string]string, len(mappings))
		}
		maps.Copy(c.ScalarMappings, mappings)
	}
}

// WithAdditionalImports appends import paths emitted verbatim after the
// library imports.
func WithAdditionalImports(imports ...string) Option {
	return func(c *Config) {
		c.AdditionalImports = append(c.AdditionalImports, imports...)
	}
}

// WithExtensibleEnums enables the catch-all "__Unknown" enum variant.
func WithExtensibleEnums(enabled bool) Option {
	return func(c *Config) { c.ExtensibleEnums = enabled }
}

// WithSplitFiles enables one-file-per-declaration output.
func WithSplitFiles(enabled bool) Option {
	return func(c *Config) { c.SplitFiles = enabled }
}

// WithPackageName sets the target package for split-file output.
func WithPackageName(name string) Option {
	return func(c *Config) { c.PackageName = name }
}

// WithEffectWrapper sets the reserved effect-wrapper envelope type name.
func WithEffectWrapper(name string) Option {
	return func(c *Config) { c.EffectWrapper = name }
}

// WithHeader sets a comment emitted at the top of every generated unit.
func WithHeader(header string) Option {
	return func(c *Config) { c.Header = header }
}

// WithFormatter supplies a custom Formatter, e.g. a real scalafmt binding.
func WithFormatter(f Formatter) Option {
	return func(c *Config) {
		c.Formatter = f
		c.EnableFormatting = true
	}
}

// WithFormatting toggles whether the configured Formatter runs at all.
func WithFormatting(enabled bool) Option {
	return func(c *Config) { c.EnableFormatting = enabled }
}

// newConfig builds a Config from opts, defaulting EnableFormatting to true.
func newConfig(opts ...Option) *Config {
	c := &Config{EnableFormatting: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
