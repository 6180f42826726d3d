package gqlselect

import (
	"os"

	"github.com/gqlselect/gqlselect/gen"
	"github.com/gqlselect/gqlselect/load"
)

// Generate loads the GraphQL schema files at paths and renders the
// generated Scala client, per gen.Write.
func Generate(paths []string, opts ...gen.Option) ([]gen.NamedSource, error) {
	sources := make([]load.Source, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = load.Source{Name: path, Input: string(data)}
	}

	doc, err := load.Schema(sources...)
	if err != nil {
		return nil, err
	}

	return gen.Write(doc, opts...)
}
