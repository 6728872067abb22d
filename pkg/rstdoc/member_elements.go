package rstdoc

import (
	"strings"

	"github.com/nieomylnieja/rstdoc/internal/comment"
	"github.com/nieomylnieja/rstdoc/pkg/reflection"
)

// ConstantElement renders a class constant.
type ConstantElement struct {
	element
	constant reflection.Constant
}

// NewConstantElement validates the constant and wraps it in a [ConstantElement].
func NewConstantElement(constant reflection.Constant) (*ConstantElement, error) {
	if err := reflection.ValidateConstant(constant); err != nil {
		return nil, err
	}
	return newConstantElement(constant), nil
}

func newConstantElement(constant reflection.Constant) *ConstantElement {
	return &ConstantElement{element: element{entity: constant}, constant: constant}
}

// TypeModifier returns the "@var" type of the constant.
func (c *ConstantElement) TypeModifier() string {
	typ, _ := c.parser().Var()
	return typ
}

func (c *ConstantElement) Render() string {
	doc := c.parser()
	return renderVariable(c.element, "const", c.constant.Name(), c.createReference("", c), doc)
}

// PropertyElement renders a class property.
type PropertyElement struct {
	element
	property reflection.Property
}

// NewPropertyElement validates the property and wraps it in a [PropertyElement].
func NewPropertyElement(property reflection.Property) (*PropertyElement, error) {
	if err := reflection.ValidateProperty(property); err != nil {
		return nil, err
	}
	return newPropertyElement(property), nil
}

func newPropertyElement(property reflection.Property) *PropertyElement {
	return &PropertyElement{element: element{entity: property}, property: property}
}

// TypeModifier returns the declared type of the property, or its "@var" type.
func (p *PropertyElement) TypeModifier() string {
	if typ := p.property.TypeName(); typ != "" {
		return typ
	}
	typ, _ := p.parser().Var()
	return typ
}

func (p *PropertyElement) Render() string {
	doc := p.parser()
	return renderVariable(p.element, "attr", p.property.Name(), p.createReference("", p), doc)
}

// renderVariable renders constants and properties:
// the directive, the ":var:" field and the description.
// A missing description falls back to the "@var" tag description.
func renderVariable(e element, directive, name, typeRef string, doc comment.Doc) string {
	var b strings.Builder
	b.WriteString(".. php:" + directive + ":: " + name)
	if typeRef != "" {
		b.WriteString("\n\n")
		b.WriteString(e.indent(":var: "+typeRef, 4, false))
	}
	description := doc.Description
	if description == "" {
		_, description = doc.Var()
	}
	if description != "" {
		b.WriteString("\n\n")
		b.WriteString(e.indent(description, 4, true))
	}
	return b.String()
}

// MethodElement renders a class method.
type MethodElement struct {
	element
	method reflection.Method
}

// NewMethodElement validates the method and wraps it in a [MethodElement].
func NewMethodElement(method reflection.Method) (*MethodElement, error) {
	if err := reflection.ValidateMethod(method); err != nil {
		return nil, err
	}
	return newMethodElement(method), nil
}

func newMethodElement(method reflection.Method) *MethodElement {
	return &MethodElement{element: element{entity: method}, method: method}
}

// TypeModifier returns the declared return type of the method, or its "@return" type.
func (m *MethodElement) TypeModifier() string {
	if typ := m.method.ReturnType(); typ != "" {
		return typ
	}
	typ, _ := m.parser().Return()
	return typ
}

func (m *MethodElement) Render() string {
	doc := m.parser()
	directive := "method"
	if m.method.IsStatic() {
		directive = "staticmethod"
	}

	var b strings.Builder
	b.WriteString(".. php:" + directive + ":: " + m.method.Name() + "(" + m.arguments() + ")")
	if doc.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(m.indent(doc.Description, 4, true))
	}
	if fields := m.fields(doc); len(fields) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.indent(strings.Join(fields, "\n"), 4, false))
	}
	return b.String()
}

// arguments renders the parameter list of the method signature.
func (m *MethodElement) arguments() string {
	params := m.method.Parameters()
	args := make([]string, 0, len(params))
	for _, param := range params {
		arg := "$" + param.Name
		if param.Variadic {
			arg = "..." + arg
		}
		if param.HasDefault {
			arg += " = " + param.DefaultValue
		}
		args = append(args, arg)
	}
	return strings.Join(args, ", ")
}

// fields renders the ":param:", ":returns:" and ":throws:" field list.
func (m *MethodElement) fields(doc comment.Doc) []string {
	var fields []string
	for _, param := range m.method.Parameters() {
		tag, _ := doc.Param(param.Name)
		typ := param.TypeName
		if typ == "" {
			typ = tag.Type
		}
		field := ":param "
		if ref := m.createReference(typ, nil); ref != "" {
			field += ref + " "
		}
		field += "$" + param.Name + ":"
		fields = append(fields, withDescription(field, tag.Description))
	}
	if returns := m.returnReference(); returns != "" {
		_, description := doc.Return()
		fields = append(fields, withDescription(":returns: "+returns, description))
	}
	for _, throw := range doc.Throws() {
		fields = append(fields, withDescription(":throws: "+m.createReference(throw.Type, nil), throw.Description))
	}
	return fields
}

// returnReference resolves each of the comma separated return types.
// Methods returning nothing yield an empty string.
func (m *MethodElement) returnReference() string {
	typ := m.TypeModifier()
	if typ == "" || typ == "void" {
		return ""
	}
	types := strings.Split(typ, ",")
	refs := make([]string, 0, len(types))
	for _, t := range types {
		if ref := m.createReference(strings.TrimSpace(t), nil); ref != "" {
			refs = append(refs, ref)
		}
	}
	return strings.Join(refs, ", ")
}

func withDescription(field, description string) string {
	description = strings.Join(strings.Fields(description), " ")
	if description == "" {
		return field
	}
	return field + " " + description
}
