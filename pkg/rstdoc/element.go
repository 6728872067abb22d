package rstdoc

import (
	"github.com/nieomylnieja/rstdoc/internal/comment"
	"github.com/nieomylnieja/rstdoc/internal/format"
	"github.com/nieomylnieja/rstdoc/internal/reference"
	"github.com/nieomylnieja/rstdoc/pkg/reflection"
)

// Element renders a single reflected entity as reStructuredText.
//
// The set of elements is closed: [ClassElement], [ConstantElement],
// [PropertyElement] and [MethodElement].
type Element interface {
	// Render returns the markup for the element.
	// An empty string means there is nothing to render.
	Render() string
}

// typeModifier is implemented by elements which have a type of their own,
// e.g. a property's declared type.
type typeModifier interface {
	TypeModifier() string
}

// element holds what is shared by all elements.
type element struct {
	entity reflection.Entity
}

// parser returns the entity's freshly parsed documentation comment.
func (e element) parser() comment.Doc {
	return comment.Parse(e.entity.DocComment())
}

func (e element) indent(text string, spaces int, rewrap bool) string {
	return format.Indent(text, spaces, rewrap)
}

// createReference returns a cross-reference token for typeName.
// If typeName is empty, the owner's own type is used instead.
// A nil owner disables the fallback.
func (e element) createReference(typeName string, owner typeModifier) string {
	if typeName == "" && owner != nil {
		typeName = owner.TypeModifier()
	}
	return reference.Create(typeName)
}
