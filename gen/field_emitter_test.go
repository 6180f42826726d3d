package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlselect/gqlselect/ast"
)

func newTestFieldEmitter(doc *ast.Document, config *Config) *fieldEmitter {
	if config == nil {
		config = &Config{}
	}
	mangler := newNameMangler()
	scalars := newScalarResolver(config.scalarMappings())
	printer := newTypePrinter()
	names := newTypeRegistry(doc, mangler)
	applyRootAliases(names, doc.Schema)
	return newFieldEmitter(doc, mangler, scalars, printer, names, config)
}

func TestEmitLeafFieldNoArgs(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{{Kind: ast.Object, Name: "Character"}}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{Name: "name", Type: ast.NamedTypeRef("String", true)}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "def name: SelectionBuilder[Character, String] =")
	assert.Contains(t, blocks[0], `Field("name", Scalar())`)
}

func TestEmitLeafFieldOptionalList(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{{Kind: ast.Object, Name: "Character"}}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{Name: "nicknames", Type: ast.ListTypeRef(ast.NamedTypeRef("String", false), true)}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	assert.Contains(t, blocks[0], "SelectionBuilder[Character, List[Option[String]]]")
	assert.Contains(t, blocks[0], `Field("nicknames", ListOf(OptionOf(Scalar())))`)
}

func TestEmitLeafFieldWithArguments(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{{Kind: ast.Object, Name: "Character"}}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{
		Name: "friendsByName",
		Type: ast.ListTypeRef(ast.NamedTypeRef("String", true), true),
		Arguments: []*ast.ArgumentDefinition{
			{Name: "search", Type: ast.NamedTypeRef("String", false), GraphQLType: "String"},
		},
	}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	text := blocks[0]
	assert.Contains(t, text, "def friendsByName(search: Option[String] = None)(implicit encoder0: ArgEncoder[Option[String]]): SelectionBuilder[Character, List[String]] =")
	assert.Contains(t, text, `arguments = List(Argument("search", search, "String")(encoder0))`)
}

func TestEmitCompositeField(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{
		{Kind: ast.Object, Name: "Character"},
		{Kind: ast.Object, Name: "Friend"},
	}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{Name: "bestFriend", Type: ast.NamedTypeRef("Friend", true)}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	text := blocks[0]
	assert.Contains(t, text, "def bestFriend[A](innerSelection: SelectionBuilder[Friend, A]): SelectionBuilder[Character, A] =")
	assert.Contains(t, text, `Field("bestFriend", Obj(innerSelection))`)
}

func TestEmitUnionFieldNoMembersErrors(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{
		{Kind: ast.Object, Name: "Character"},
		{Kind: ast.Union, Name: "SearchResult"},
	}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{Name: "result", Type: ast.NamedTypeRef("SearchResult", true)}
	_, err := e.Emit("Character", field)
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
}

func TestEmitUnionFieldAccessors(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{
		{Kind: ast.Object, Name: "Character"},
		{Kind: ast.Union, Name: "SearchResult", UnionTypes: []string{"Human", "Droid"}},
		{Kind: ast.Object, Name: "Human"},
		{Kind: ast.Object, Name: "Droid"},
	}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{Name: "result", Type: ast.NamedTypeRef("SearchResult", true)}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	exhaustive := blocks[0]
	assert.Contains(t, exhaustive, "def result[A](onHuman: SelectionBuilder[Human, A], onDroid: SelectionBuilder[Droid, A]): SelectionBuilder[Character, A] =")
	assert.Contains(t, exhaustive, `"Human" -> Obj(onHuman)`)

	option := blocks[1]
	assert.Contains(t, option, "def resultOption[A](onHuman: Option[SelectionBuilder[Human, A]] = None, onDroid: Option[SelectionBuilder[Droid, A]] = None): SelectionBuilder[Character, A] =")
	assert.Contains(t, option, `"Droid" -> onDroid.fold(NullField)(Obj(_))`)
}

func TestEmitInterfaceFieldNoImplementors(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{
		{Kind: ast.Object, Name: "Character"},
		{Kind: ast.Interface, Name: "Node"},
	}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{Name: "node", Type: ast.NamedTypeRef("Node", true)}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "def nodeInterface[A](selection: SelectionBuilder[Node, A]): SelectionBuilder[Character, A] =")
}

func TestEmitInterfaceFieldWithImplementors(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{
		{Kind: ast.Object, Name: "Character"},
		{Kind: ast.Interface, Name: "Node"},
		{Kind: ast.Object, Name: "Human", Interfaces: []string{"Node"}},
		{Kind: ast.Object, Name: "Droid", Interfaces: []string{"Node"}},
	}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{Name: "node", Type: ast.NamedTypeRef("Node", true)}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Contains(t, blocks[0], "def node[A](onHuman: SelectionBuilder[Human, A], onDroid: SelectionBuilder[Droid, A]): SelectionBuilder[Character, A] =")
	assert.Contains(t, blocks[1], "def nodeOption[A](")
	assert.Contains(t, blocks[2], "def nodeInterface[A](selection: SelectionBuilder[Node, A]): SelectionBuilder[Character, A] =")
}

func TestEmitLeafFieldDeprecated(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{{Kind: ast.Object, Name: "Character"}}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{
		Name:              "homePlanet",
		Type:              ast.NamedTypeRef("String", false),
		Deprecated:        true,
		DeprecationReason: "use planet instead",
	}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	assert.Contains(t, blocks[0], `@deprecated("use planet instead", "")`)
}

func TestEmitLeafFieldReservedArgumentName(t *testing.T) {
	doc := &ast.Document{Definitions: []*ast.Definition{{Kind: ast.Object, Name: "Character"}}}
	e := newTestFieldEmitter(doc, nil)

	field := &ast.FieldDefinition{
		Name: "byType",
		Type: ast.NamedTypeRef("String", true),
		Arguments: []*ast.ArgumentDefinition{
			{Name: "type", Type: ast.NamedTypeRef("String", true), GraphQLType: "String!"},
		},
	}
	blocks, err := e.Emit("Character", field)
	require.NoError(t, err)
	assert.Contains(t, blocks[0], "def byType(`type`: String)(implicit encoder0: ArgEncoder[String]): SelectionBuilder[Character, String] =")
}
