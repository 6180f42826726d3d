package gen

import (
	"fmt"
	"strings"

	"github.com/gqlselect/gqlselect/ast"
)

// fieldEmitter renders one FieldDefinition into one or more SelectionBuilder
// accessor methods: scalar/enum and composite fields (with or without
// arguments) each produce one accessor, while union and interface fields
// fan a single field out into two or three accessors on the owner.
type fieldEmitter struct {
	doc     *ast.Document
	mangler *nameMangler
	scalars *scalarResolver
	printer *typePrinter
	names   *typeRegistry
	config  *Config
}

func newFieldEmitter(doc *ast.Document, mangler *nameMangler, scalars *scalarResolver, printer *typePrinter, names *typeRegistry, config *Config) *fieldEmitter {
	return &fieldEmitter{doc: doc, mangler: mangler, scalars: scalars, printer: printer, names: names, config: config}
}

// renderedArgs is the parameter-list, implicit-encoder, and Argument(...)
// clause material common to every field accessor that carries arguments.
type renderedArgs struct {
	params    []string
	encoders  []string
	arguments []string
}

// Emit renders field into one or more complete accessor method blocks. Most
// fields produce exactly one; union and interface fields produce two or
// three.
func (e *fieldEmitter) Emit(ownerName string, field *ast.FieldDefinition) ([]string, error) {
	def := e.doc.DefinitionForName(field.Type.Name())

	var kind ast.DefinitionKind
	if def != nil {
		kind = def.Kind
	} else {
		kind = ast.Scalar // unknown type: treat as an opaque leaf.
	}

	switch kind {
	case ast.Union:
		return e.emitUnionField(ownerName, field, def)
	case ast.Interface:
		return e.emitInterfaceField(ownerName, field, def)
	case ast.Object:
		return []string{e.emitCompositeField(ownerName, field, def)}, nil
	default: // Scalar, Enum, or unresolved
		return []string{e.emitLeafField(ownerName, field)}, nil
	}
}

func (e *fieldEmitter) emitLeafField(ownerName string, field *ast.FieldDefinition) string {
	leafName := e.names.Name(field.Type.Name())
	target := e.printer.WrapType(field.Type, e.leafTarget(field.Type.Name(), leafName))
	builder := e.printer.WrapBuilder(field.Type, "Scalar()")

	args := e.renderArgs(field.Arguments)
	sig := e.signature(field, nil, args, fmt.Sprintf("SelectionBuilder[%s, %s]", ownerName, target))
	body := e.fieldCall(field.Name, builder, args.arguments)
	return e.assemble(field, sig, body)
}

func (e *fieldEmitter) emitCompositeField(ownerName string, field *ast.FieldDefinition, def *ast.Definition) string {
	inner := e.names.OwnerName(def.Name)
	target := e.printer.WrapType(field.Type, "A")
	builder := e.printer.WrapBuilder(field.Type, "Obj(innerSelection)")

	args := e.renderArgs(field.Arguments)
	selectionParam := fmt.Sprintf("innerSelection: SelectionBuilder[%s, A]", inner)
	sig := e.signature(field, []string{"A"}, appendParam(args, selectionParam), fmt.Sprintf("SelectionBuilder[%s, %s]", ownerName, target))
	body := e.fieldCall(field.Name, builder, args.arguments)
	return e.assemble(field, sig, body)
}

// emitUnionField produces the exhaustive accessor and the *Option accessor
// for a union-typed field.
func (e *fieldEmitter) emitUnionField(ownerName string, field *ast.FieldDefinition, def *ast.Definition) ([]string, error) {
	if len(def.UnionTypes) == 0 {
		return nil, NewGenerationError("field", field.Name, "union type has no members", nil)
	}

	target := e.printer.WrapType(field.Type, "A")
	returnType := fmt.Sprintf("SelectionBuilder[%s, %s]", ownerName, target)

	exhaustiveParams := make([]string, len(def.UnionTypes))
	exhaustiveCases := make([]string, len(def.UnionTypes))
	optionParams := make([]string, len(def.UnionTypes))
	optionCases := make([]string, len(def.UnionTypes))

	for i, variant := range def.UnionTypes {
		variantName := e.names.OwnerName(variant)
		param := e.mangler.VariantParam(variant)
		exhaustiveParams[i] = fmt.Sprintf("%s: SelectionBuilder[%s, A]", param, variantName)
		exhaustiveCases[i] = fmt.Sprintf("%q -> Obj(%s)", variant, param)

		optionParams[i] = fmt.Sprintf("%s: Option[SelectionBuilder[%s, A]] = None", param, variantName)
		optionCases[i] = fmt.Sprintf("%q -> %s.fold(NullField)(Obj(_))", variant, param)
	}

	exhaustiveBuilder := e.printer.WrapBuilder(field.Type, fmt.Sprintf("ChoiceOf(Map(%s))", strings.Join(exhaustiveCases, ", ")))
	optionBuilder := e.printer.WrapBuilder(field.Type, fmt.Sprintf("ChoiceOf(Map(%s))", strings.Join(optionCases, ", ")))

	exhaustiveSig := fmt.Sprintf("def %s[A](%s): %s =", e.mangler.FieldIdent(field.Name), strings.Join(exhaustiveParams, ", "), returnType)
	exhaustiveBody := e.fieldCall(field.Name, exhaustiveBuilder, nil)

	optionName := e.mangler.OptionAccessor(e.mangler.FieldIdent(field.Name))
	optionSig := fmt.Sprintf("def %s[A](%s): %s =", optionName, strings.Join(optionParams, ", "), returnType)
	optionBody := e.fieldCall(field.Name, optionBuilder, nil)

	return []string{
		e.assemble(field, exhaustiveSig, exhaustiveBody),
		e.assembleBare(optionSig, optionBody),
	}, nil
}

// emitInterfaceField produces the exhaustive, *Option, and *Interface
// accessors for an interface-typed field. When the interface has zero
// implementors in this document, only the *Interface accessor is emitted,
// since there is nothing to be exhaustive over.
func (e *fieldEmitter) emitInterfaceField(ownerName string, field *ast.FieldDefinition, def *ast.Definition) ([]string, error) {
	implementors := e.doc.Implementors(def.Name)
	ifaceName := e.names.OwnerName(def.Name)
	target := e.printer.WrapType(field.Type, "A")
	returnType := fmt.Sprintf("SelectionBuilder[%s, %s]", ownerName, target)

	interfaceParam := "selection"
	interfaceBuilder := e.printer.WrapBuilder(field.Type, fmt.Sprintf("Obj(%s)", interfaceParam))
	interfaceSig := fmt.Sprintf("def %s[A](%s: SelectionBuilder[%s, A]): %s =",
		e.mangler.InterfaceAccessor(e.mangler.FieldIdent(field.Name)), interfaceParam, ifaceName, returnType)
	interfaceBody := e.fieldCall(field.Name, interfaceBuilder, nil)
	interfaceBlock := e.assembleBare(interfaceSig, interfaceBody)

	if len(implementors) == 0 {
		return []string{interfaceBlock}, nil
	}

	exhaustiveParams := make([]string, len(implementors))
	exhaustiveCases := make([]string, len(implementors))
	optionParams := make([]string, len(implementors))
	optionCases := make([]string, len(implementors))

	for i, impl := range implementors {
		implName := e.names.OwnerName(impl.Name)
		param := e.mangler.VariantParam(impl.Name)
		exhaustiveParams[i] = fmt.Sprintf("%s: SelectionBuilder[%s, A]", param, implName)
		exhaustiveCases[i] = fmt.Sprintf("%q -> Obj(%s)", impl.Name, param)

		optionParams[i] = fmt.Sprintf("%s: Option[SelectionBuilder[%s, A]] = None", param, implName)
		optionCases[i] = fmt.Sprintf("%q -> %s.fold(NullField)(Obj(_))", impl.Name, param)
	}

	exhaustiveBuilder := e.printer.WrapBuilder(field.Type, fmt.Sprintf("ChoiceOf(Map(%s))", strings.Join(exhaustiveCases, ", ")))
	optionBuilder := e.printer.WrapBuilder(field.Type, fmt.Sprintf("ChoiceOf(Map(%s))", strings.Join(optionCases, ", ")))

	exhaustiveSig := fmt.Sprintf("def %s[A](%s): %s =", e.mangler.FieldIdent(field.Name), strings.Join(exhaustiveParams, ", "), returnType)
	exhaustiveBody := e.fieldCall(field.Name, exhaustiveBuilder, nil)

	optionName := e.mangler.OptionAccessor(e.mangler.FieldIdent(field.Name))
	optionSig := fmt.Sprintf("def %s[A](%s): %s =", optionName, strings.Join(optionParams, ", "), returnType)
	optionBody := e.fieldCall(field.Name, optionBuilder, nil)

	return []string{
		e.assemble(field, exhaustiveSig, exhaustiveBody),
		e.assembleBare(optionSig, optionBody),
		interfaceBlock,
	}, nil
}

// leafTarget resolves the target type for a scalar or enum named type,
// returning the mangled declaration name as the fallback for an unresolved
// named type reference.
func (e *fieldEmitter) leafTarget(name, mangledDeclName string) string {
	target, _ := e.scalars.Resolve(name, mangledDeclName)
	return target
}

// renderArgs builds the parameter declarations, implicit encoder
// parameters, and Argument(...) clause entries for a field's arguments:
// optional arguments default to None, list arguments (regardless of
// nullability) default to Nil, and each argument induces an implicit
// ArgEncoder parameter in declaration order.
func (e *fieldEmitter) renderArgs(arguments []*ast.ArgumentDefinition) renderedArgs {
	var out renderedArgs
	for i, arg := range arguments {
		ident := e.mangler.FieldIdent(arg.Name)
		mangledDecl := e.names.Name(arg.Type.Name())
		leaf := e.leafTarget(arg.Type.Name(), mangledDecl)
		argType := e.printer.WrapType(arg.Type, leaf)

		sep := ":"
		if e.mangler.NeedsSpaceBeforeColon(ident) {
			sep = " :"
		}

		decl := fmt.Sprintf("%s%s %s%s", ident, sep, argType, e.argDefault(arg))
		out.params = append(out.params, decl)

		encoderName := fmt.Sprintf("encoder%d", i)
		out.encoders = append(out.encoders, fmt.Sprintf("%s: ArgEncoder[%s]", encoderName, argType))
		out.arguments = append(out.arguments, fmt.Sprintf("Argument(%q, %s, %q)(%s)", arg.Name, ident, arg.GraphQLType, encoderName))
	}
	return out
}

func (e *fieldEmitter) argDefault(arg *ast.ArgumentDefinition) string {
	if arg.DefaultValue != "" {
		return " = " + arg.DefaultValue
	}
	if arg.Type.IsList() {
		return " = Nil"
	}
	if !arg.Type.NonNull {
		return " = None"
	}
	return ""
}

func appendParam(args renderedArgs, param string) renderedArgs {
	args.params = append(args.params, param)
	return args
}

// signature renders a full def line (everything up to and including the
// trailing "=") for a field with generic params, argument params, and
// implicit encoder params, in that order.
func (e *fieldEmitter) signature(field *ast.FieldDefinition, generics []string, args renderedArgs, returnType string) string {
	ident := e.mangler.FieldIdent(field.Name)

	var b strings.Builder
	b.WriteString("def ")
	b.WriteString(ident)
	if len(generics) > 0 {
		b.WriteString("[")
		b.WriteString(strings.Join(generics, ", "))
		b.WriteString("]")
	}
	if len(args.params) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(args.params, ", "))
		b.WriteString(")")
	}
	if len(args.encoders) > 0 {
		b.WriteString("(implicit ")
		b.WriteString(strings.Join(args.encoders, ", "))
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(returnType)
	b.WriteString(" =")
	return b.String()
}

func (e *fieldEmitter) fieldCall(wireName, builder string, arguments []string) string {
	if len(arguments) == 0 {
		return fmt.Sprintf("Field(%q, %s)", wireName, builder)
	}
	return fmt.Sprintf("Field(%q, %s, arguments = List(%s))", wireName, builder, strings.Join(arguments, ", "))
}

// assemble prefixes sig/body with field's docstring and deprecation marker.
func (e *fieldEmitter) assemble(field *ast.FieldDefinition, sig, body string) string {
	var lines []string
	lines = append(lines, renderDoc(field.Description)...)
	if field.Deprecated {
		lines = append(lines, deprecatedAnnotation(field.DeprecationReason))
	}
	lines = append(lines, sig, "  "+body)
	return strings.Join(lines, "\n")
}

func (e *fieldEmitter) assembleBare(sig, body string) string {
	return strings.Join([]string{sig, "  " + body}, "\n")
}

// renderDoc renders a GraphQL description as a Scaladoc comment, or nil if
// description is empty.
func renderDoc(description string) []string {
	if description == "" {
		return nil
	}
	if !strings.Contains(description, "\n") {
		return []string{fmt.Sprintf("/** %s */", description)}
	}
	lines := []string{"/**"}
	for _, l := range strings.Split(description, "\n") {
		lines = append(lines, "  * "+l)
	}
	lines = append(lines, "  */")
	return lines
}

// deprecatedAnnotation renders a @deprecated marker carrying the reason
// string and an empty since string.
func deprecatedAnnotation(reason string) string {
	if strings.Contains(reason, "\n") {
		return fmt.Sprintf("@deprecated(\"\"\"%s\"\"\", \"\")", reason)
	}
	return fmt.Sprintf("@deprecated(%q, \"\")", reason)
}
