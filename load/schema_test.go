package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlselect/gqlselect/ast"
)

const starWarsSchema = `
schema {
  query: Query
}

type Query {
  hero(episode: Episode): Character
  search(text: String!): [SearchResult!]!
}

interface Character {
  name: String!
  friends: [Character!]
}

type Human implements Character {
  name: String!
  friends: [Character!]
  homePlanet: String @deprecated(reason: "use homeworld instead")
}

type Droid implements Character {
  name: String!
  friends: [Character!]
  primaryFunction: String
}

union SearchResult = Human | Droid

enum Episode {
  NEWHOPE
  EMPIRE
  JEDI
}

input ReviewInput {
  stars: Int!
  commentary: String
}

scalar DateTime @specifiedBy(url: "https://example.com/datetime")
`

func TestSchemaParsesDocumentShape(t *testing.T) {
	doc, err := Schema(Source{Name: "starwars.graphql", Input: starWarsSchema})
	require.NoError(t, err)
	require.NotNil(t, doc.Schema)
	assert.Equal(t, "Query", doc.Schema.Query)
	assert.Empty(t, doc.Schema.Mutation)

	byName := map[string]*ast.Definition{}
	for _, def := range doc.Definitions {
		byName[def.Name] = def
	}

	query, ok := byName["Query"]
	require.True(t, ok)
	assert.Equal(t, ast.Object, query.Kind)
	require.Len(t, query.Fields, 2)
	assert.Equal(t, "hero", query.Fields[0].Name)
	require.Len(t, query.Fields[0].Arguments, 1)
	assert.Equal(t, "episode", query.Fields[0].Arguments[0].Name)

	character, ok := byName["Character"]
	require.True(t, ok)
	assert.Equal(t, ast.Interface, character.Kind)

	human, ok := byName["Human"]
	require.True(t, ok)
	assert.Equal(t, []string{"Character"}, human.Interfaces)
	homePlanet := fieldNamed(human.Fields, "homePlanet")
	require.NotNil(t, homePlanet)
	assert.True(t, homePlanet.Deprecated)
	assert.Equal(t, "use homeworld instead", homePlanet.DeprecationReason)

	union, ok := byName["SearchResult"]
	require.True(t, ok)
	assert.Equal(t, ast.Union, union.Kind)
	assert.ElementsMatch(t, []string{"Human", "Droid"}, union.UnionTypes)

	episode, ok := byName["Episode"]
	require.True(t, ok)
	require.Len(t, episode.EnumValues, 3)
	assert.Equal(t, "NEWHOPE", episode.EnumValues[0].Name)

	review, ok := byName["ReviewInput"]
	require.True(t, ok)
	assert.Equal(t, ast.InputObject, review.Kind)

	dateTime, ok := byName["DateTime"]
	require.True(t, ok)
	assert.Equal(t, ast.Scalar, dateTime.Kind)
	assert.Equal(t, "https://example.com/datetime", dateTime.SpecifiedByURL)
}

func TestSchemaExcludesBuiltinsAndIntrospection(t *testing.T) {
	doc, err := Schema(Source{Name: "starwars.graphql", Input: starWarsSchema})
	require.NoError(t, err)

	for _, def := range doc.Definitions {
		assert.NotEqual(t, "String", def.Name)
		assert.NotEqual(t, "__Schema", def.Name)
	}

	query := fieldNamed(findDef(doc, "Query").Fields, "hero")
	require.NotNil(t, query)
}

func TestSchemaFieldTypeShapes(t *testing.T) {
	doc, err := Schema(Source{Name: "starwars.graphql", Input: starWarsSchema})
	require.NoError(t, err)

	search := fieldNamed(findDef(doc, "Query").Fields, "search")
	require.NotNil(t, search)
	assert.True(t, search.Type.NonNull)
	assert.True(t, search.Type.IsList())
	assert.True(t, search.Type.Elem.NonNull)
	assert.Equal(t, "SearchResult", search.Type.Elem.Name())
}

func TestSchemaInvalidDocumentPropagatesError(t *testing.T) {
	_, err := Schema(Source{Name: "broken.graphql", Input: "type Foo { bar: NotDeclared }"})
	require.Error(t, err)
}

func fieldNamed(fields []*ast.FieldDefinition, name string) *ast.FieldDefinition {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func findDef(doc *ast.Document, name string) *ast.Definition {
	for _, def := range doc.Definitions {
		if def.Name == name {
			return def
		}
	}
	return nil
}
