package rstdoc

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/nieomylnieja/rstdoc/internal/format"
	"github.com/nieomylnieja/rstdoc/internal/reference"
	"github.com/nieomylnieja/rstdoc/pkg/reflection"
)

// Extension is appended to the class name to form the document path.
const Extension = ".rst"

// ClassElement renders a whole class, interface or trait document.
type ClassElement struct {
	element
	class reflection.Class
	// SkipInherited excludes members declared by ancestors from the document.
	// It is true unless [WithInheritedMembers] is passed.
	SkipInherited bool
}

// NewClassElement validates the class, including its members, and wraps it in a [ClassElement].
func NewClassElement(class reflection.Class, opts ...Option) (*ClassElement, error) {
	if err := reflection.ValidateClass(class); err != nil {
		return nil, err
	}
	options := newOptions(opts...)
	return &ClassElement{
		element:       element{entity: class},
		class:         class,
		SkipInherited: !options.includeInherited,
	}, nil
}

// Path returns the document path, relative to the output directory.
func (c *ClassElement) Path() string {
	return c.class.Name() + Extension
}

// Build writes the rendered document to basedir.
func (c *ClassElement) Build(basedir string) error {
	path := filepath.Join(basedir, c.Path())
	if err := os.WriteFile(path, []byte(c.Render()), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s documentation", c.class.FullName())
	}
	return nil
}

func (c *ClassElement) Render() string {
	name := c.class.FullName()
	title := reference.Escape(name)
	banner := strings.Repeat("-", utf8.RuneCountInString(title))

	var b strings.Builder
	b.WriteString(".. _" + reference.Anchor(name) + ":\n\n")
	b.WriteString(banner + "\n" + title + "\n" + banner + "\n\n")
	b.WriteString(c.NamespaceElement())
	b.WriteString(c.InheritanceTree())
	b.WriteString(".. php:" + c.directive() + ":: " + c.class.Name())

	if description := c.parser().Description; description != "" {
		b.WriteString("\n\n")
		b.WriteString(c.indent(description, 4, true))
	}
	for _, sub := range c.subElements() {
		fragment := sub.Render()
		if fragment == "" {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(c.indent(fragment, 4, false))
	}
	b.WriteString("\n\n")

	return format.Normalize(b.String())
}

// NamespaceElement returns the namespace directive followed by a blank line.
// Classes in the global namespace have none.
func (c *ClassElement) NamespaceElement() string {
	namespace := c.class.Namespace()
	if namespace == "" {
		return ""
	}
	return ".. php:namespace:: " + reference.Escape(namespace) + "\n\n"
}

// InheritanceTree lists references to the class ancestors, nearest first.
// It is empty if the class has no ancestors.
func (c *ClassElement) InheritanceTree() string {
	ancestors := c.class.Ancestors()
	if len(ancestors) == 0 {
		return ""
	}
	refs := make([]string, 0, len(ancestors))
	for _, ancestor := range ancestors {
		refs = append(refs, reference.AnchorRef(ancestor))
	}
	return "Inheritance:\n     " + strings.Join(refs, " » ") + "\n\n"
}

func (c *ClassElement) directive() string {
	switch c.class.Kind() {
	case reflection.KindInterface:
		return "interface"
	case reflection.KindTrait:
		return "trait"
	default:
		return "class"
	}
}

func (c *ClassElement) subElements() []Element {
	constants := c.constants()
	properties := c.properties()
	methods := c.methods()
	elements := make([]Element, 0, len(constants)+len(properties)+len(methods))
	for _, e := range constants {
		elements = append(elements, e)
	}
	for _, e := range properties {
		elements = append(elements, e)
	}
	for _, e := range methods {
		elements = append(elements, e)
	}
	return elements
}

func (c *ClassElement) constants() []*ConstantElement {
	constants := filterInherited(c, c.class.Constants())
	elements := make([]*ConstantElement, 0, len(constants))
	for _, constant := range constants {
		elements = append(elements, newConstantElement(constant))
	}
	return elements
}

func (c *ClassElement) properties() []*PropertyElement {
	properties := filterInherited(c, c.class.Properties())
	elements := make([]*PropertyElement, 0, len(properties))
	for _, property := range properties {
		elements = append(elements, newPropertyElement(property))
	}
	return elements
}

func (c *ClassElement) methods() []*MethodElement {
	methods := filterInherited(c, c.class.Methods())
	elements := make([]*MethodElement, 0, len(methods))
	for _, method := range methods {
		elements = append(elements, newMethodElement(method))
	}
	return elements
}

// filterInherited drops members declared by other classes, unless inherited members are requested.
func filterInherited[M reflection.Member](c *ClassElement, members []M) []M {
	if !c.SkipInherited {
		return members
	}
	name := c.class.FullName()
	own := make([]M, 0, len(members))
	for _, member := range members {
		if strings.Trim(member.DeclaringClass(), reflection.NamespaceSeparator) == name {
			own = append(own, member)
		}
	}
	return own
}
