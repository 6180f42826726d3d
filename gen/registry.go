package gen

import "github.com/gqlselect/gqlselect/ast"

// typeRegistry holds the collision-resolved mangled name for every
// top-level declaration in a document, built once by DocumentEmitter and
// threaded through TypeEmitter and FieldEmitter so every emission site
// renders the same name for the same GraphQL type.
//
// Name and OwnerName answer two different questions. A schema root type
// keeps its own declared container name — `object Q` is still reachable
// as `Q` — but every SelectionBuilder its fields
// produce is parameterized over the canonical RootQuery/RootMutation/
// RootSubscription sentinel, via a phantom alias `type Q = RootQuery`.
// Name answers the container question; OwnerName answers the type-param
// question.
type typeRegistry struct {
	mangled map[string]string
	roots   map[string]string // original GraphQL name -> RootQuery/RootMutation/RootSubscription
}

func newTypeRegistry(doc *ast.Document, mangler *nameMangler) *typeRegistry {
	names := make([]string, len(doc.Definitions))
	for i, def := range doc.Definitions {
		names[i] = def.Name
	}
	resolved := mangler.ResolveCollisions(names)

	m := make(map[string]string, len(names))
	for i, n := range names {
		m[n] = resolved[i]
	}
	return &typeRegistry{mangled: m, roots: map[string]string{}}
}

// Name returns the mangled declaration name for a GraphQL type name, or the
// name unchanged if it isn't a top-level declaration in this document
// (e.g. a built-in scalar).
func (r *typeRegistry) Name(original string) string {
	if m, ok := r.mangled[original]; ok {
		return m
	}
	return original
}

// OwnerName returns the name used as a SelectionBuilder type parameter for
// original: the RootQuery/RootMutation/RootSubscription sentinel if
// original is a schema root type, otherwise the same as Name.
func (r *typeRegistry) OwnerName(original string) string {
	if alias, ok := r.roots[original]; ok {
		return alias
	}
	return r.Name(original)
}

// IsRoot reports whether original is a schema root type, and if so, which
// sentinel it aliases.
func (r *typeRegistry) IsRoot(original string) (string, bool) {
	alias, ok := r.roots[original]
	return alias, ok
}
