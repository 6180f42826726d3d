package gen

import (
	"fmt"

	"github.com/gqlselect/gqlselect/ast"
)

// typePrinter renders a GraphQL type reference two ways at once: as a
// target type expression and as the matching FieldBuilder expression.
// Both renderings fold over the same Type tree with the same rule: a bare
// (non-NonNull) node gets wrapped in Option[...]/OptionOf(...); every list
// node additionally gets List[...]/ListOf(...). Example traces:
//
//	String        -> Option[String]          / OptionOf(Scalar())
//	String!       -> String                  / Scalar()
//	[String]!     -> List[Option[String]]    / ListOf(OptionOf(Scalar()))
//	[String!]!    -> List[String]            / ListOf(Scalar())
type typePrinter struct{}

func newTypePrinter() *typePrinter { return &typePrinter{} }

// WrapType nests leaf (the already-resolved scalar target type, or the
// generic selection parameter letter for a composite field) in Option[...]/
// List[...] layers reflecting ref's nullability and list nesting.
func (p *typePrinter) WrapType(ref *ast.Type, leaf string) string {
	return p.wrap(ref, leaf, "Option[%s]", "List[%s]")
}

// WrapBuilder nests leaf (e.g. "Scalar()" or "Obj(innerSelection)") in
// OptionOf(...)/ListOf(...) layers reflecting ref's nullability and list
// nesting.
func (p *typePrinter) WrapBuilder(ref *ast.Type, leaf string) string {
	return p.wrap(ref, leaf, "OptionOf(%s)", "ListOf(%s)")
}

func (p *typePrinter) wrap(ref *ast.Type, leaf, optionFmt, listFmt string) string {
	var expr string
	if ref.Elem != nil {
		expr = fmt.Sprintf(listFmt, p.wrap(ref.Elem, leaf, optionFmt, listFmt))
	} else {
		expr = leaf
	}
	if !ref.NonNull {
		expr = fmt.Sprintf(optionFmt, expr)
	}
	return expr
}
