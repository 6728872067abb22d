// Package reference builds Sphinx cross-reference tokens and labels from namespaced names.
package reference

import (
	"regexp"
	"strings"
)

// NamespaceSeparator separates namespace segments in fully-qualified names.
const NamespaceSeparator = `\`

// unionSeparator separates alternatives in a union type, e.g. "Foo|Bar".
const unionSeparator = "|"

var nonNameCharRegex = regexp.MustCompile(`[^\w\\]`)

// Create returns a typed cross-reference token for typeName.
// Union types are resolved per alternative and joined with " | ".
// An empty typeName yields an empty string.
func Create(typeName string) string {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return ""
	}
	if strings.Contains(typeName, unionSeparator) {
		parts := strings.Split(typeName, unionSeparator)
		refs := make([]string, 0, len(parts))
		for _, part := range parts {
			if ref := Create(part); ref != "" {
				refs = append(refs, ref)
			}
		}
		return strings.Join(refs, " | ")
	}
	label := Escape(strings.Trim(typeName, NamespaceSeparator))
	return ":ref:`" + label + " <" + Identifier(typeName) + ">`"
}

// Identifier returns the lowercase reference target for typeName.
// Characters which are neither word characters nor namespace separators are dropped,
// separators become hyphens and surrounding hyphens are trimmed.
func Identifier(typeName string) string {
	clean := nonNameCharRegex.ReplaceAllString(typeName, "")
	return strings.ToLower(strings.Trim(strings.ReplaceAll(clean, NamespaceSeparator, "-"), "-"))
}

// Anchor returns the label under which a class document is registered.
// Unlike [Identifier] it neither sanitizes nor trims the name.
func Anchor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, NamespaceSeparator, "-"))
}

// AnchorRef returns a reference pointing directly at the [Anchor] of name.
func AnchorRef(name string) string {
	return ":ref:`" + Anchor(name) + "`"
}

// Escape doubles every namespace separator so that reST renders it literally.
func Escape(name string) string {
	return strings.ReplaceAll(name, NamespaceSeparator, NamespaceSeparator+NamespaceSeparator)
}
