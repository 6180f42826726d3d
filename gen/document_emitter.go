package gen

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gqlselect/gqlselect/ast"
)

// NamedSource is one generated source unit.
type NamedSource struct {
	Name string
	Text string
}

// baseImports are the client-library symbols every generated unit depends
// on regardless of what kinds of declarations it contains (ArgEncoder,
// Argument, and the rest of the root namespace).
var baseImports = []string{"caliban.client._"}

// fieldBuilderImports back a SelectionBuilder accessor: Field, Obj, Scalar,
// ListOf, OptionOf, ChoiceOf and friends. Only needed when the unit emits
// at least one object, interface, or union declaration.
var fieldBuilderImports = []string{
	"caliban.client.FieldBuilder._",
	"caliban.client.SelectionBuilder",
	"caliban.client.Operations._",
}

// valueImports back the __Value wire tree and its decode-error type. Only
// needed when the unit emits at least one enum or input-object declaration,
// since those are the kinds whose ScalarDecoder/ArgEncoder bodies construct
// or match on __Value directly.
var valueImports = []string{
	"caliban.client.CalibanClientError.DecodingError",
	"caliban.client.Value._",
}

// importNeeds tracks which conditional import groups a generated unit
// requires, based on the kinds of declarations it actually contains.
type importNeeds struct {
	fieldBuilder bool
	value        bool
}

func (n *importNeeds) addKind(kind ast.DefinitionKind) {
	switch kind {
	case ast.Object, ast.Interface, ast.Union:
		n.fieldBuilder = true
	case ast.Enum, ast.InputObject:
		n.value = true
	}
}

func (n importNeeds) imports() []string {
	out := append([]string{}, baseImports...)
	if n.fieldBuilder {
		out = append(out, fieldBuilderImports...)
	}
	if n.value {
		out = append(out, valueImports...)
	}
	return out
}

// Write renders doc into one or more generated source units. With no
// SplitFiles option, it returns exactly one NamedSource holding
// the whole client. With SplitFiles set, it returns one NamedSource per
// top-level declaration plus an aggregator, emitted concurrently via
// golang.org/x/sync/errgroup with one goroutine per declaration.
func Write(doc *ast.Document, opts ...Option) ([]NamedSource, error) {
	if doc == nil {
		return nil, ErrMissingDocument
	}

	config := newConfig(opts...)
	mangler := newNameMangler()
	scalars := newScalarResolver(config.scalarMappings())
	printer := newTypePrinter()
	names := newTypeRegistry(doc, mangler)
	applyRootAliases(names, doc.Schema)

	fields := newFieldEmitter(doc, mangler, scalars, printer, names, config)
	types := newTypeEmitter(doc, mangler, scalars, printer, fields, names, config)

	if config.SplitFiles {
		return writeSplit(doc, types, config)
	}
	return writeSingle(doc, types, config)
}

// applyRootAliases records which declared types are schema roots, so
// OwnerName can substitute the canonical RootQuery/RootMutation/
// RootSubscription sentinel for them everywhere a SelectionBuilder names
// its owner. The container itself (`object Q`) keeps its own declared
// name; only the type parameter is aliased.
//
// The alias wins the canonical sentinel name. Any independently declared
// type whose own mangled container name exactly equals a sentinel string it
// does not own is displaced with a "_1" suffix, so the sentinel symbols
// stay unambiguous.
func applyRootAliases(names *typeRegistry, schema *ast.SchemaDefinition) {
	if schema == nil {
		return
	}
	aliases := []struct{ original, canonical string }{
		{schema.Query, "RootQuery"},
		{schema.Mutation, "RootMutation"},
		{schema.Subscription, "RootSubscription"},
	}
	for _, a := range aliases {
		if a.original == "" {
			continue
		}
		names.roots[a.original] = a.canonical
		for orig, mangled := range names.mangled {
			if orig != a.original && mangled == a.canonical {
				names.mangled[orig] = mangled + "_1"
			}
		}
	}
}

func writeSingle(doc *ast.Document, types *typeEmitter, config *Config) ([]NamedSource, error) {
	w := newCodeWriter()
	var needs importNeeds
	for _, def := range doc.Definitions {
		decl, err := types.Emit(def)
		if err != nil {
			return nil, NewGenerationError("document", def.Name, "emitting declaration", err)
		}
		if decl == "" {
			continue
		}
		needs.addKind(def.Kind)
		if phantom, ok := types.Phantom(def); ok {
			w.Write(phantom)
		}
		w.Write(decl)
	}

	body := fmt.Sprintf("object Client {\n%s\n}", indentBlock(w.Join(), 1))
	text := assembleFile(config, body, false, needs.imports())
	text, err := formatIfEnabled(config, text)
	if err != nil {
		return nil, NewGenerationError("document", "", "formatting output", err)
	}
	return []NamedSource{{Name: "Client", Text: text}}, nil
}

func writeSplit(doc *ast.Document, types *typeEmitter, config *Config) ([]NamedSource, error) {
	sources := make([]NamedSource, len(doc.Definitions))

	g, _ := errgroup.WithContext(context.Background())
	for i, def := range doc.Definitions {
		i, def := i, def
		g.Go(func() error {
			decl, err := types.Emit(def)
			if err != nil {
				return NewGenerationError("document", def.Name, "emitting declaration", err)
			}
			if decl == "" {
				return nil
			}
			var needs importNeeds
			needs.addKind(def.Kind)
			text := assembleFile(config, decl, false, needs.imports())
			text, err = formatIfEnabled(config, text)
			if err != nil {
				return NewGenerationError("document", def.Name, "formatting output", err)
			}
			sources[i] = NamedSource{Name: types.names.Name(def.Name), Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]NamedSource, 0, len(sources)+1)
	for _, s := range sources {
		if s.Name == "" {
			continue // no declaration text: a union, or a scalar/enum with a user-supplied mapping
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	w := newCodeWriter()
	for _, def := range doc.Definitions {
		if phantom, ok := types.Phantom(def); ok {
			w.Write(phantom)
		}
	}
	body := fmt.Sprintf("package object %s {\n%s\n}", config.packageName(), indentBlock(w.Join(), 1))
	index := assembleFile(config, body, true, nil)
	out = append([]NamedSource{{Name: "package", Text: index}}, out...)
	return out, nil
}

// assembleFile prepends the header comment, package clause, and imports to
// body. skipPackageLine is set for the package-object index file, which
// declares `package object <name>` itself and would collide with a
// separate `package <name>` clause in the same file. imports is the set of
// library imports this particular unit needs; the package-object index
// needs none, since it contains nothing but phantom type declarations.
func assembleFile(config *Config, body string, skipPackageLine bool, imports []string) string {
	var parts []string
	if config.Header != "" {
		parts = append(parts, headerComment(config.Header))
	}
	if config.SplitFiles && !skipPackageLine {
		parts = append(parts, fmt.Sprintf("package %s", config.packageName()))
	}
	if len(imports) > 0 {
		parts = append(parts, strings.Join(imports, "\n"))
	}
	if len(config.AdditionalImports) > 0 {
		parts = append(parts, strings.Join(config.AdditionalImports, "\n"))
	}
	if body != "" {
		parts = append(parts, body)
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func headerComment(header string) string {
	lines := strings.Split(header, "\n")
	for i, l := range lines {
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}

func formatIfEnabled(config *Config, text string) (string, error) {
	if !config.EnableFormatting {
		return text, nil
	}
	return config.formatter().Format(text)
}
