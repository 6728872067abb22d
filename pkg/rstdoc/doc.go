// Package rstdoc renders reflected classes as reStructuredText documents
// for Sphinx and its PHP domain.
//
// Every reflected entity is wrapped in an [Element]:
//   - [ClassElement] renders a whole document for a class, interface or trait
//   - [ConstantElement], [PropertyElement] and [MethodElement] render single members
//
// # Basic Usage
//
//	class := reflection.ClassSnapshot{
//	    ShortName:     "User",
//	    NamespaceName: `App\Model`,
//	}
//	element, err := rstdoc.NewClassElement(class)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(element.Render())
//
// Which produces:
//
//	.. _app-model-user:
//
//	----------------
//	App\\Model\\User
//	----------------
//
//	.. php:namespace:: App\\Model
//
//	.. php:class:: User
//
// # Document Layout
//
// A class document consists of, in order:
//
//   - An anchor label, the lowercased fully-qualified name with namespace separators
//     replaced by hyphens
//   - A title banner
//   - The namespace directive
//   - The inheritance list, only if the class has ancestors
//   - The class directive, followed by the class description and its constants,
//     properties and methods, each indented by four spaces
//
// Whitespace-only lines and trailing spaces never appear in the output.
//
// # Inherited Members
//
// Members declared by an ancestor are documented on the ancestor's page only.
// Use [WithInheritedMembers] to document them on every subclass.
//
// # Building
//
// [Build] validates a set of classes and writes one document per class,
// named after the class ([ClassElement.Path]).
package rstdoc
