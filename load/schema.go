// Package load parses and validates GraphQL schema source text using
// gqlparser, then converts the validated tree into this module's own
// ast.Document — the data model package gen actually walks.
package load

import (
	"fmt"
	"os"

	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	internalast "github.com/gqlselect/gqlselect/ast"
)

// Source is one named chunk of GraphQL schema text, mirroring gqlparser's
// own ast.Source.
type Source struct {
	Name  string
	Input string
}

// SchemaFile reads and parses a single schema file from disk.
func SchemaFile(path string) (*internalast.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read schema file %s: %w", path, err)
	}
	return Schema(Source{Name: path, Input: string(data)})
}

// Schema parses and validates one or more schema sources and converts the
// result into this module's ast.Document. Parse and validation failures are
// returned untouched, exactly as gqlparser reports them.
func Schema(sources ...Source) (*internalast.Document, error) {
	gqlSources := make([]*ast.Source, len(sources))
	for i, s := range sources {
		gqlSources[i] = &ast.Source{Name: s.Name, Input: s.Input}
	}

	schema, err := gqlparser.LoadSchema(gqlSources...)
	if err != nil {
		return nil, err
	}

	return convert(schema), nil
}

// convert walks a validated gqlparser schema into this module's document
// model. Built-in introspection types (__Schema, __Type, and friends) and
// the five built-in scalars are never part of the emitted document: the
// scalar resolver already special-cases the built-in scalar names, and the
// introspection meta-types have no client-generation meaning.
func convert(schema *ast.Schema) *internalast.Document {
	doc := &internalast.Document{}

	if schema.Query != nil || schema.Mutation != nil || schema.Subscription != nil {
		doc.Schema = &internalast.SchemaDefinition{}
		if schema.Query != nil {
			doc.Schema.Query = schema.Query.Name
		}
		if schema.Mutation != nil {
			doc.Schema.Mutation = schema.Mutation.Name
		}
		if schema.Subscription != nil {
			doc.Schema.Subscription = schema.Subscription.Name
		}
	}

	for _, name := range sortedUserNames(schema.Types) {
		def := schema.Types[name]
		if converted := convertDefinition(def); converted != nil {
			doc.Definitions = append(doc.Definitions, converted)
		}
	}

	return doc
}

func isBuiltin(name string) bool {
	if len(name) >= 2 && name[0] == '_' && name[1] == '_' {
		return true
	}
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	return false
}

func convertDefinition(def *ast.Definition) *internalast.Definition {
	if isBuiltin(def.Name) {
		return nil
	}

	out := &internalast.Definition{
		Name:        def.Name,
		Description: def.Description,
	}

	switch def.Kind {
	case ast.Scalar:
		out.Kind = internalast.Scalar
		out.SpecifiedByURL = specifiedByURL(def)
	case ast.Object:
		out.Kind = internalast.Object
		out.Interfaces = append([]string{}, def.Interfaces...)
		out.Fields = convertFields(def.Fields)
	case ast.Interface:
		out.Kind = internalast.Interface
		out.Fields = convertFields(def.Fields)
	case ast.Union:
		out.Kind = internalast.Union
		for _, t := range def.Types {
			out.UnionTypes = append(out.UnionTypes, t)
		}
	case ast.Enum:
		out.Kind = internalast.Enum
		for _, v := range def.EnumValues {
			out.EnumValues = append(out.EnumValues, &internalast.EnumValueDefinition{
				Name:              v.Name,
				Description:       v.Description,
				Deprecated:        isDeprecated(v.Directives),
				DeprecationReason: deprecationReason(v.Directives),
			})
		}
	case ast.InputObject:
		out.Kind = internalast.InputObject
		out.Fields = convertFields(def.Fields)
	default:
		return nil
	}

	return out
}

func convertFields(fields ast.FieldList) []*internalast.FieldDefinition {
	out := make([]*internalast.FieldDefinition, 0, len(fields))
	for _, f := range fields {
		if len(f.Name) >= 2 && f.Name[0] == '_' && f.Name[1] == '_' {
			continue // __typename and friends: not part of the authored schema.
		}
		field := &internalast.FieldDefinition{
			Name:              f.Name,
			Description:       f.Description,
			Type:              convertType(f.Type),
			Deprecated:        isDeprecated(f.Directives),
			DeprecationReason: deprecationReason(f.Directives),
		}
		for _, a := range f.Arguments {
			field.Arguments = append(field.Arguments, &internalast.ArgumentDefinition{
				Name:        a.Name,
				Type:        convertType(a.Type),
				GraphQLType: a.Type.String(),
			})
		}
		out = append(out, field)
	}
	return out
}

func convertType(t *ast.Type) *internalast.Type {
	if t == nil {
		return nil
	}
	if t.Elem != nil {
		return internalast.ListTypeRef(convertType(t.Elem), t.NonNull)
	}
	return internalast.NamedTypeRef(t.NamedType, t.NonNull)
}

func isDeprecated(directives ast.DirectiveList) bool {
	return directives.ForName("deprecated") != nil
}

func deprecationReason(directives ast.DirectiveList) string {
	d := directives.ForName("deprecated")
	if d == nil {
		return ""
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		return arg.Value.Raw
	}
	return ""
}

func specifiedByURL(def *ast.Definition) string {
	d := def.Directives.ForName("specifiedBy")
	if d == nil {
		return ""
	}
	if arg := d.Arguments.ForName("url"); arg != nil && arg.Value != nil {
		return arg.Value.Raw
	}
	return ""
}

func sortedUserNames(types map[string]*ast.Definition) []string {
	// gqlparser's schema.Types is a map, so iteration order is unstable.
	// gqlparser preserves per-definition Position data, which we use here
	// to recover the original document order instead.
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sortByPosition(names, types)
	return names
}
