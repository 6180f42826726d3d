package gen

// builtinScalars maps the five GraphQL built-in scalar names to the
// caliban-client target's corresponding built-in type.
var builtinScalars = map[string]string{
	"Int":     "Int",
	"Float":   "Double",
	"String":  "String",
	"Boolean": "Boolean",
	"ID":      "String",
}

// scalarResolver translates a GraphQL scalar (or scalar-redirected enum)
// name into a target type expression.
type scalarResolver struct {
	mappings map[string]string
}

func newScalarResolver(mappings map[string]string) *scalarResolver {
	return &scalarResolver{mappings: mappings}
}

// Resolve returns the target type expression for name and whether it came
// from a user-supplied mapping (as opposed to a built-in or the fallback).
// A name resolved via mapping suppresses that name's own declaration
// (typeEmitter consults IsMapped for this).
func (r *scalarResolver) Resolve(name string, mangledDeclName string) (target string, isMapped bool) {
	if t, ok := r.mappings[name]; ok {
		return t, true
	}
	if t, ok := builtinScalars[name]; ok {
		return t, false
	}
	// Unknown scalar: fall back to the mangled declaration name. This
	// never raises — a downstream compiler error is expected instead if
	// nothing declares this type.
	return mangledDeclName, false
}

// IsMapped reports whether name has a user-supplied scalar mapping.
func (r *scalarResolver) IsMapped(name string) bool {
	_, ok := r.mappings[name]
	return ok
}

// IsBuiltinScalar reports whether name is one of the five GraphQL built-in
// scalars.
func IsBuiltinScalar(name string) bool {
	_, ok := builtinScalars[name]
	return ok
}
