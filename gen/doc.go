// Package gen generates a typed Scala client from a GraphQL schema.
//
// # Architecture
//
// The pipeline follows this flow:
//
//	GraphQL schema source (load.Schema)
//	        ↓
//	   ast.Document (type-system definitions only)
//	        ↓
//	   typeRegistry (collision + root-alias resolved names)
//	        ↓
//	   typeEmitter / fieldEmitter (per-declaration, per-field rendering)
//	        ↓
//	   Formatter (re-indent)
//	        ↓
//	   []NamedSource
//
// # Key Collaborators
//
//   - typePrinter: folds a GraphQL type reference into its target type
//     expression and its matching FieldBuilder expression in lockstep.
//   - nameMangler: renames reserved/colliding identifiers deterministically.
//   - scalarResolver: maps scalar (and redirected enum) names to target types.
//   - fieldEmitter: renders one field into one or more accessor methods.
//   - typeEmitter: renders one top-level declaration.
//   - Formatter: re-indents the assembled text; does not parse it.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: configuration error; Options cannot fail and Write never returns one
//   - GenerationError: failure while emitting a named field or type
//
//	sources, err := gen.Write(doc, gen.WithSplitFiles(true))
//	if err != nil {
//	    if gen.IsGenerationError(err) {
//	        // inspect err.(*gen.GenerationError).Phase / .Name
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration uses the functional-options pattern:
//
//	sources, err := gen.Write(doc,
//	    gen.WithScalarMapping(map[string]string{"DateTime": "java.time.Instant"}),
//	    gen.WithSplitFiles(true),
//	    gen.WithPackageName("client"),
//	)
//
// # Concurrency
//
// With WithSplitFiles, each top-level declaration is rendered and formatted
// on its own goroutine via golang.org/x/sync/errgroup; Write blocks until
// every declaration completes and returns the first error, if any.
package gen
