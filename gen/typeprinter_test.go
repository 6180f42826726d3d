package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gqlselect/gqlselect/ast"
)

func TestTypePrinterWrapType(t *testing.T) {
	p := newTypePrinter()

	tests := []struct {
		name string
		ref  *ast.Type
		want string
	}{
		{"bare named", ast.NamedTypeRef("String", false), "Option[String]"},
		{"non-null named", ast.NamedTypeRef("String", true), "String"},
		{"non-null list of nullable", ast.ListTypeRef(ast.NamedTypeRef("String", false), true), "List[Option[String]]"},
		{"non-null list of non-null", ast.ListTypeRef(ast.NamedTypeRef("String", true), true), "List[String]"},
		{"bare list", ast.ListTypeRef(ast.NamedTypeRef("String", true), false), "Option[List[String]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.WrapType(tt.ref, "String"))
		})
	}
}

func TestTypePrinterWrapBuilder(t *testing.T) {
	p := newTypePrinter()

	tests := []struct {
		name string
		ref  *ast.Type
		want string
	}{
		{"bare named", ast.NamedTypeRef("String", false), "OptionOf(Scalar())"},
		{"non-null named", ast.NamedTypeRef("String", true), "Scalar()"},
		{"non-null list of nullable", ast.ListTypeRef(ast.NamedTypeRef("String", false), true), "ListOf(OptionOf(Scalar()))"},
		{"non-null list of non-null", ast.ListTypeRef(ast.NamedTypeRef("String", true), true), "ListOf(Scalar())"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.WrapBuilder(tt.ref, "Scalar()"))
		})
	}
}
