package gen

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// reservedWords are target (Scala) identifiers that cannot be declared bare
// in a value position. "wait" is not a Scala keyword — it is a method every
// value inherits from java.lang.Object — but an unquoted field named `wait`
// would shadow it, so it is quoted alongside the syntactic keywords.
var reservedWords = map[string]struct{}{
	"abstract": {}, "case": {}, "catch": {}, "class": {}, "def": {},
	"do": {}, "else": {}, "extends": {}, "false": {}, "final": {},
	"finally": {}, "for": {}, "forSome": {}, "if": {}, "implicit": {},
	"import": {}, "lazy": {}, "match": {}, "new": {}, "null": {},
	"object": {}, "override": {}, "package": {}, "private": {},
	"protected": {}, "return": {}, "sealed": {}, "super": {}, "this": {},
	"throw": {}, "trait": {}, "true": {}, "try": {}, "type": {}, "val": {},
	"var": {}, "while": {}, "with": {}, "yield": {}, "wait": {},
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// nameMangler deterministically rewrites GraphQL identifiers into safe
// target identifiers. It holds no mutable state across calls — it is a
// pure function of its inputs.
type nameMangler struct{}

func newNameMangler() *nameMangler { return &nameMangler{} }

// FieldIdent returns the identifier used to declare wireName as a field or
// method in a value position. Reserved words and trailing-underscore names
// are backtick-quoted; a single leading underscore followed by a letter is
// accepted bare.
func (m *nameMangler) FieldIdent(wireName string) string {
	if m.needsBacktick(wireName) {
		return "`" + wireName + "`"
	}
	return wireName
}

// RecordFieldIdent returns the identifier used for wireName as a record
// field or encoder-body local binding: a reserved word gets a "$" marker
// suffix instead of backticks, since it appears in constructor-parameter
// position where backtick quoting isn't available the same way. The wire
// string travels separately and is never altered by this method.
func (m *nameMangler) RecordFieldIdent(wireName string) string {
	if _, reserved := reservedWords[wireName]; reserved {
		return wireName + "$"
	}
	return wireName
}

// NeedsSpaceBeforeColon reports whether ident, when immediately followed by
// ":" in a parameter or field-type declaration, needs a separating space
// ("_name_ :") to avoid the trailing underscore being lexed together with
// the colon.
func (m *nameMangler) NeedsSpaceBeforeColon(ident string) bool {
	return strings.HasSuffix(ident, "_") && !strings.HasSuffix(ident, "`")
}

func (m *nameMangler) needsBacktick(name string) bool {
	if _, reserved := reservedWords[name]; reserved {
		return true
	}
	if strings.HasSuffix(name, "_") {
		return true
	}
	if strings.HasPrefix(name, "__") {
		return true
	}
	// A single leading underscore followed by a letter is accepted bare.
	return false
}

// ResolveCollisions renames same-name siblings under ASCII case-folding.
// The first occurrence of any case-folded name keeps
// its original spelling; every later occurrence gets a "_N" suffix in
// source order, N starting at 1. names is not mutated; the wire strings
// corresponding to these names are never touched by this function — that
// preservation happens at the call site, which always emits the original
// (pre-mangle) name into the Field(...)/__EnumValue(...) wire string.
func (m *nameMangler) ResolveCollisions(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, n := range names {
		folded := strings.ToLower(n) // ASCII fold: GraphQL Name is ASCII-only.
		if count, ok := seen[folded]; !ok {
			out[i] = n
			seen[folded] = 0
		} else {
			count++
			seen[folded] = count
			out[i] = fmt.Sprintf("%s_%d", n, count)
		}
	}
	return out
}

// VariantParam returns the "on<Variant>" parameter label used for one
// union/interface member in an exhaustive or optional selection accessor.
func (m *nameMangler) VariantParam(variantName string) string {
	return "on" + titleCaser.String(variantName)
}

// OptionAccessor returns the "<field>Option" accessor name for the
// optional-selection form of a union/interface field.
func (m *nameMangler) OptionAccessor(fieldName string) string {
	return fieldName + "Option"
}

// InterfaceAccessor returns the "<field>Interface" accessor name for the
// common-fields selection form of an interface field.
func (m *nameMangler) InterfaceAccessor(fieldName string) string {
	return fieldName + "Interface"
}
