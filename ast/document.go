// Package ast holds the document model this module's generator walks: the
// GraphQL schema's type system, stripped of everything the client-code
// emitter doesn't need (executable queries, schema extensions, validation
// state). Values in this package are immutable once built by package load
// and are safe to share across goroutines.
package ast

// DefinitionKind distinguishes the GraphQL type-system definition kinds.
type DefinitionKind string

const (
	Scalar      DefinitionKind = "SCALAR"
	Object      DefinitionKind = "OBJECT"
	Interface   DefinitionKind = "INTERFACE"
	Union       DefinitionKind = "UNION"
	Enum        DefinitionKind = "ENUM"
	InputObject DefinitionKind = "INPUT_OBJECT"
)

// Document is an ordered collection of type definitions plus an optional
// schema definition naming the root operation types.
type Document struct {
	Definitions []*Definition
	Schema      *SchemaDefinition
}

// DefinitionForName returns the definition with the given name, or nil.
func (d *Document) DefinitionForName(name string) *Definition {
	for _, def := range d.Definitions {
		if def.Name == name {
			return def
		}
	}
	return nil
}

// Implementors returns the Object definitions that declare name in their
// Interfaces list, in document order.
func (d *Document) Implementors(name string) []*Definition {
	var out []*Definition
	for _, def := range d.Definitions {
		if def.Kind != Object {
			continue
		}
		for _, iface := range def.Interfaces {
			if iface == name {
				out = append(out, def)
				break
			}
		}
	}
	return out
}

// SchemaDefinition names the root operation types. Any of the three may be
// empty, meaning the document declares no such root.
type SchemaDefinition struct {
	Query        string
	Mutation     string
	Subscription string
}

// Definition is one GraphQL type-system definition.
type Definition struct {
	Kind        DefinitionKind
	Name        string
	Description string

	// Interfaces lists the interface names an Object implements, source order.
	Interfaces []string

	// Fields holds the field set for Object, Interface, and InputObject kinds.
	Fields []*FieldDefinition

	// UnionTypes lists the member type names for a Union, source order.
	UnionTypes []string

	// EnumValues holds the value set for an Enum, source order.
	EnumValues []*EnumValueDefinition

	// SpecifiedByURL carries a Scalar's @specifiedBy(url:) argument, if any.
	SpecifiedByURL string
}

// FieldDefinition is one field of an Object, Interface, or InputObject.
// Arguments are meaningful only for Object and Interface fields, and
// DefaultValue only for InputObject fields; package load always leaves
// DefaultValue zero-valued.
type FieldDefinition struct {
	Name        string
	Description string
	Arguments   []*ArgumentDefinition
	Type        *Type

	// DefaultValue is the input field's default value literal, already
	// rendered as a target-language expression, or "" if there is none.
	DefaultValue string

	Deprecated        bool
	DeprecationReason string
}

// ArgumentDefinition is one argument of a field.
type ArgumentDefinition struct {
	Name         string
	Type         *Type
	DefaultValue string // rendered target-language expression, or ""

	// GraphQLType is the argument's type reference reproduced verbatim as
	// GraphQL source syntax (e.g. "Int!", "[String]!"), used as the wire
	// type literal passed to Argument(...).
	GraphQLType string
}

// EnumValueDefinition is one value of an Enum.
type EnumValueDefinition struct {
	Name              string
	Description       string
	Deprecated        bool
	DeprecationReason string
}

// Type is a GraphQL type reference. It is a flag-carrying node rather than
// three separate Named/NonNull/List constructors: Elem is non-nil for a
// list type, nil for a named type, and NonNull marks *this* node (the list
// itself, or the named leaf) as non-nullable. GraphQL never nests NonNull
// inside NonNull or represents a List without an Elem, so this loses no
// information, and it is exactly how github.com/vektah/gqlparser/v2's own
// ast.Type is shaped.
type Type struct {
	NamedType string
	Elem      *Type
	NonNull   bool
}

// IsList reports whether t is a list type.
func (t *Type) IsList() bool { return t.Elem != nil }

// Name returns the innermost named type this reference ultimately refers
// to, unwrapping any list nesting.
func (t *Type) Name() string {
	for t.Elem != nil {
		t = t.Elem
	}
	return t.NamedType
}

// String renders t back to GraphQL type syntax, e.g. "[String!]!".
func (t *Type) String() string {
	var s string
	if t.Elem != nil {
		s = "[" + t.Elem.String() + "]"
	} else {
		s = t.NamedType
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

// NamedTypeRef builds a bare named type reference.
func NamedTypeRef(name string, nonNull bool) *Type {
	return &Type{NamedType: name, NonNull: nonNull}
}

// ListTypeRef builds a list type reference wrapping elem.
func ListTypeRef(elem *Type, nonNull bool) *Type {
	return &Type{Elem: elem, NonNull: nonNull}
}
