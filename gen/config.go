package gen

// Config carries the generator's options to every emission site. The zero
// value is a valid Config, so Write(document) with no options at all is a
// valid, minimal invocation.
type Config struct {
	// ScalarMappings maps a GraphQL scalar (or enum, to redirect it to an
	// external type) name to a target type expression.
	ScalarMappings map[string]string

	// AdditionalImports are emitted verbatim after the library imports,
	// in order, separated from them by a blank line.
	AdditionalImports []string

	// ExtensibleEnums, when set, gives every enum a catch-all
	// "__Unknown(value: String)" variant carrying the unrecognized wire
	// string.
	ExtensibleEnums bool

	// SplitFiles, when set, emits one file per top-level declaration plus
	// a package-object file with type aliases, instead of one aggregated
	// "Client" file.
	SplitFiles bool

	// PackageName is the target package; only meaningful when SplitFiles
	// is set.
	PackageName string

	// EffectWrapper is reserved for a future effect-wrapping envelope type:
	// plumbed through Config but not consulted by any emission site yet.
	EffectWrapper string

	// Header, if non-empty, is emitted as a comment at the top of every
	// generated unit.
	Header string

	// Formatter re-indents the generated text before it is returned. If
	// nil, Write uses IndentFormatter. Ignored entirely when
	// EnableFormatting is false.
	Formatter Formatter

	// EnableFormatting controls whether Formatter runs at all.
	EnableFormatting bool
}

// scalarMappings returns c.ScalarMappings, or an empty, non-nil map.
func (c *Config) scalarMappings() map[string]string {
	if c.ScalarMappings == nil {
		return map[string]string{}
	}
	return c.ScalarMappings
}

// formatter returns the configured Formatter, or the default.
func (c *Config) formatter() Formatter {
	if c.Formatter != nil {
		return c.Formatter
	}
	return IndentFormatter{}
}

// packageName returns c.PackageName, defaulting to "client" when SplitFiles
// is set but no package name was given.
func (c *Config) packageName() string {
	if c.PackageName != "" {
		return c.PackageName
	}
	return "client"
}
