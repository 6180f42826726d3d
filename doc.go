// Package gqlselect generates a typed Scala client from a GraphQL schema.
//
// The work is split across three packages:
//
//   - ast: the in-memory schema document model.
//   - load: parses GraphQL schema source into an ast.Document, via
//     github.com/vektah/gqlparser/v2.
//   - gen: renders an ast.Document into generated Scala source units.
//
// Generate is a convenience wrapper over load.Schema and gen.Write for the
// common case of generating straight from schema files on disk:
//
//	sources, err := gqlselect.Generate([]string{"schema.graphql"}, gen.WithSplitFiles(true))
package gqlselect
