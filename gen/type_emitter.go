package gen

import (
	"fmt"
	"strings"

	"github.com/gqlselect/gqlselect/ast"
)

// typeEmitter renders one top-level Definition into a complete Scala
// declaration: an object per Object or Interface type holding its field
// accessors, an enum ADT, an input-object record plus encoder, and a type
// alias per custom scalar. A union renders no declaration of its own.
type typeEmitter struct {
	doc     *ast.Document
	mangler *nameMangler
	scalars *scalarResolver
	printer *typePrinter
	fields  *fieldEmitter
	names   *typeRegistry
	config  *Config
}

func newTypeEmitter(doc *ast.Document, mangler *nameMangler, scalars *scalarResolver, printer *typePrinter, fields *fieldEmitter, names *typeRegistry, config *Config) *typeEmitter {
	return &typeEmitter{doc: doc, mangler: mangler, scalars: scalars, printer: printer, fields: fields, names: names, config: config}
}

// Emit renders def's declaration, or "" for a union, and for a scalar or
// enum that is suppressed because a user scalar mapping resolved it.
func (e *typeEmitter) Emit(def *ast.Definition) (string, error) {
	switch def.Kind {
	case ast.Object:
		return e.emitObject(def)
	case ast.Interface:
		return e.emitInterface(def)
	case ast.Union:
		return e.emitUnion(def)
	case ast.Enum:
		return e.emitEnum(def)
	case ast.InputObject:
		return e.emitInputObject(def)
	case ast.Scalar:
		return e.emitScalar(def)
	default:
		return "", NewGenerationError("type", def.Name, fmt.Sprintf("unknown definition kind %q", def.Kind), nil)
	}
}

// Phantom returns def's phantom tag declaration line — `type N` for an
// ordinary Object or Interface, `type N = RootQuery` (etc.) for a schema
// root — and whether def has one at all (only Object and Interface kinds
// carry a phantom).
func (e *typeEmitter) Phantom(def *ast.Definition) (string, bool) {
	if def.Kind != ast.Object && def.Kind != ast.Interface {
		return "", false
	}
	name := e.names.Name(def.Name)
	owner := e.names.OwnerName(def.Name)
	if name != owner {
		return fmt.Sprintf("type %s = %s", name, owner), true
	}
	return fmt.Sprintf("type %s", name), true
}

// emitObject renders an Object type as a Scala object whose members are
// one SelectionBuilder accessor per field, plus an implements clause for
// any interface it declares so the generated owner can satisfy each
// interface's shared trait.
func (e *typeEmitter) emitObject(def *ast.Definition) (string, error) {
	name := e.names.Name(def.Name)
	owner := e.names.OwnerName(def.Name)

	w := newCodeWriter()
	for _, field := range def.Fields {
		blocks, err := e.fields.Emit(owner, field)
		if err != nil {
			return "", NewGenerationError("type", def.Name, "emitting field "+field.Name, err)
		}
		for _, b := range blocks {
			w.Write(b)
		}
	}

	header := fmt.Sprintf("object %s {", name)
	if len(def.Interfaces) > 0 {
		// Scala allows one `extends` clause followed by any number of
		// `with` traits.
		parts := make([]string, len(def.Interfaces))
		for i, iface := range def.Interfaces {
			parts[i] = e.names.Name(iface)
		}
		header = fmt.Sprintf("object %s extends %s {", name, strings.Join(parts, " with "))
	}

	var out []string
	out = append(out, renderDoc(def.Description)...)
	out = append(out, header)
	out = append(out, indentBlock(w.Join(), 1))
	out = append(out, "}")
	return strings.Join(out, "\n"), nil
}

// emitInterface renders an interface as a Scala object holding one
// SelectionBuilder accessor per common field, same as an Object, since
// every implementor's field accessors project onto the same wire selection
// mechanics.
func (e *typeEmitter) emitInterface(def *ast.Definition) (string, error) {
	name := e.names.Name(def.Name)

	w := newCodeWriter()
	for _, field := range def.Fields {
		blocks, err := e.fields.Emit(name, field)
		if err != nil {
			return "", NewGenerationError("type", def.Name, "emitting field "+field.Name, err)
		}
		for _, b := range blocks {
			w.Write(b)
		}
	}

	var out []string
	out = append(out, renderDoc(def.Description)...)
	out = append(out, fmt.Sprintf("object %s {", name))
	out = append(out, indentBlock(w.Join(), 1))
	out = append(out, "}")
	return strings.Join(out, "\n"), nil
}

// emitUnion renders nothing: a union carries no fields of its own in
// GraphQL, and there is no declaration for the union itself beyond its
// individual variant types. Every generated member a union field needs —
// the exhaustive and *Option accessors — is rendered onto the owner (the
// field's declaring Object or Interface) by fieldEmitter.emitUnionField.
func (e *typeEmitter) emitUnion(def *ast.Definition) (string, error) {
	return "", nil
}

// emitEnum renders an Enum as a sealed-trait ADT, one case object per
// value carrying its wire string as a value field, plus a ScalarDecoder
// matching each value's __StringValue and a catch-all decode error, an
// ArgEncoder re-emitting that value field as __EnumValue, and a values
// vector in source order. When config.ExtensibleEnums is set, an extra
// data-bearing __Unknown variant absorbs any wire value the schema doesn't
// declare, so a server-added enum value doesn't break decoding of an
// already-compiled client. An enum with a user scalar mapping renders "",
// since the mapped type replaces it at every reference.
func (e *typeEmitter) emitEnum(def *ast.Definition) (string, error) {
	if e.scalars.IsMapped(def.Name) {
		return "", nil
	}
	name := e.names.Name(def.Name)
	valueNames := make([]string, len(def.EnumValues))
	for i, v := range def.EnumValues {
		valueNames[i] = v.Name
	}
	mangled := e.mangler.ResolveCollisions(valueNames)

	var out []string
	out = append(out, renderDoc(def.Description)...)
	out = append(out, fmt.Sprintf("sealed trait %s extends scala.Product with scala.Serializable {", name))
	out = append(out, "  def value: String")
	out = append(out, "}")
	out = append(out, fmt.Sprintf("object %s {", name))

	w := newCodeWriter()
	decoderCases := make([]string, 0, len(def.EnumValues)+1)
	valueIdents := make([]string, 0, len(def.EnumValues))
	for i, v := range def.EnumValues {
		var lines []string
		lines = append(lines, renderDoc(v.Description)...)
		if v.Deprecated {
			lines = append(lines, deprecatedAnnotation(v.DeprecationReason))
		}
		lines = append(lines, fmt.Sprintf("case object %s extends %s {", mangled[i], name))
		lines = append(lines, fmt.Sprintf("  def value: String = %q", v.Name))
		lines = append(lines, "}")
		w.Write(strings.Join(lines, "\n"))
		decoderCases = append(decoderCases, fmt.Sprintf("case __Value.__StringValue(%q) => Right(%s)", v.Name, mangled[i]))
		valueIdents = append(valueIdents, mangled[i])
	}

	if e.config.ExtensibleEnums {
		w.Write(fmt.Sprintf("case class __Unknown(value: String) extends %s", name))
		decoderCases = append(decoderCases, "case __Value.__StringValue(other) => Right(__Unknown(other))")
	}
	decoderCases = append(decoderCases, fmt.Sprintf("case other => Left(DecodingError(s\"Can't build %s from input $other\"))", name))

	w.Write(fmt.Sprintf("val values: List[%s] = List(%s)", name, strings.Join(valueIdents, ", ")))

	decoderLines := []string{
		fmt.Sprintf("implicit val decoder: ScalarDecoder[%s] = new ScalarDecoder[%s] {", name, name),
		fmt.Sprintf("  override def decode(value: __Value): Either[DecodingError, %s] = value match {", name),
	}
	for _, c := range decoderCases {
		decoderLines = append(decoderLines, "    "+c)
	}
	decoderLines = append(decoderLines, "  }", "}")
	w.Write(strings.Join(decoderLines, "\n"))

	encoderLines := []string{
		fmt.Sprintf("implicit val encoder: ArgEncoder[%s] = new ArgEncoder[%s] {", name, name),
		fmt.Sprintf("  override def encode(value: %s): __Value = __Value.__EnumValue(value.value)", name),
		"}",
	}
	w.Write(strings.Join(encoderLines, "\n"))

	out = append(out, indentBlock(w.Join(), 1))
	out = append(out, "}")
	return strings.Join(out, "\n"), nil
}

// emitInputObject renders an InputObject as a record-like case class with
// an ArgEncoder instance in its companion object.
func (e *typeEmitter) emitInputObject(def *ast.Definition) (string, error) {
	name := e.names.Name(def.Name)

	fieldDecls := make([]string, len(def.Fields))
	encodeEntries := make([]string, len(def.Fields))
	for i, field := range def.Fields {
		recordIdent := e.mangler.RecordFieldIdent(field.Name)
		mangledDecl := e.names.Name(field.Type.Name())
		leaf := e.leafTargetFor(field.Type.Name(), mangledDecl)
		target := e.printer.WrapType(field.Type, leaf)

		defaultExpr := ""
		if field.DefaultValue != "" {
			defaultExpr = " = " + field.DefaultValue
		} else if field.Type.IsList() {
			defaultExpr = " = Nil"
		} else if !field.Type.NonNull {
			defaultExpr = " = None"
		}

		sep := ":"
		if e.mangler.NeedsSpaceBeforeColon(recordIdent) {
			sep = " :"
		}
		fieldDecls[i] = fmt.Sprintf("%s%s %s%s", recordIdent, sep, target, defaultExpr)
		if field.Type.IsList() {
			elemMangledDecl := e.names.Name(field.Type.Elem.Name())
			elemLeaf := e.leafTargetFor(field.Type.Elem.Name(), elemMangledDecl)
			elemTarget := e.printer.WrapType(field.Type.Elem, elemLeaf)
			encodeEntries[i] = fmt.Sprintf("%q -> __Value.__ListValue(value.%s.map(implicitly[ArgEncoder[%s]].encode(_)))", field.Name, recordIdent, elemTarget)
		} else {
			encodeEntries[i] = fmt.Sprintf("%q -> implicitly[ArgEncoder[%s]].encode(value.%s)", field.Name, target, recordIdent)
		}
	}

	var out []string
	out = append(out, renderDoc(def.Description)...)
	out = append(out, fmt.Sprintf("case class %s(%s)", name, strings.Join(fieldDecls, ", ")))
	out = append(out, fmt.Sprintf("object %s {", name))
	out = append(out, fmt.Sprintf("  implicit val encoder: ArgEncoder[%s] = new ArgEncoder[%s] {", name, name))
	out = append(out, fmt.Sprintf("    override def encode(value: %s): __Value =", name))
	out = append(out, fmt.Sprintf("      __Value.__ObjectValue(List(%s))", strings.Join(encodeEntries, ", ")))
	out = append(out, "  }")
	out = append(out, "}")
	return strings.Join(out, "\n"), nil
}

// emitScalar renders a custom Scalar as a `type <Name> = String` alias,
// preceded by its description and any @specifiedBy URL as comments, or ""
// when the user supplied an explicit mapping for it, in which case no
// declaration is emitted at all.
func (e *typeEmitter) emitScalar(def *ast.Definition) (string, error) {
	if e.scalars.IsMapped(def.Name) {
		return "", nil
	}
	name := e.names.Name(def.Name)

	var out []string
	out = append(out, renderDoc(def.Description)...)
	if def.SpecifiedByURL != "" {
		out = append(out, fmt.Sprintf("// specifiedBy: %s", def.SpecifiedByURL))
	}
	out = append(out, fmt.Sprintf("type %s = String", name))
	return strings.Join(out, "\n"), nil
}

func (e *typeEmitter) leafTargetFor(name, mangledDecl string) string {
	target, _ := e.scalars.Resolve(name, mangledDecl)
	return target
}
