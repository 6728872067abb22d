package typeinfo

import (
	"go/types"
	"regexp"
	"strings"
)

// NamespaceSeparator separates the segments of a converted import path.
const NamespaceSeparator = `\`

var nonWordRegex = regexp.MustCompile(`\W`)

// Namespace converts a Go import path into a namespace.
// Path segments are separated with [NamespaceSeparator] and
// any character which is not a word character is replaced with an underscore.
//
// Example:
//
//	Namespace("github.com/nieomylnieja/rstdoc") == `github_com\nieomylnieja\rstdoc`
func Namespace(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}
	segments := strings.Split(pkgPath, "/")
	for i, segment := range segments {
		segments[i] = nonWordRegex.ReplaceAllString(segment, "_")
	}
	return strings.Join(segments, NamespaceSeparator)
}

// QualifiedName returns the fully-qualified name of a package-level object.
func QualifiedName(pkg *types.Package, name string) string {
	if pkg == nil {
		return name
	}
	return Namespace(pkg.Path()) + NamespaceSeparator + name
}

// Name returns the documented name of the [types.Type].
// Named types are fully-qualified, see [QualifiedName].
// Pointers and channels are stripped, slices, arrays and maps produce
// the name of their element type suffixed with "[]".
// Predeclared types, like int or error, are returned as is.
//
// Instead of having:
//
//	"[]*github.com/foo/bar.Baz"
//
// It will produce:
//
//	`github_com\foo\bar\Baz[]`
func Name(typ types.Type) string {
	if typ == nil {
		return ""
	}
	switch t := types.Unalias(typ).(type) {
	case *types.Pointer:
		return Name(t.Elem())
	case *types.Chan:
		return Name(t.Elem())
	case *types.Slice:
		return Name(t.Elem()) + "[]"
	case *types.Array:
		return Name(t.Elem()) + "[]"
	case *types.Map:
		return Name(t.Elem()) + "[]"
	case *types.Named:
		return QualifiedName(t.Obj().Pkg(), t.Obj().Name())
	case *types.Basic:
		return t.Name()
	case *types.TypeParam:
		return t.Obj().Name()
	case *types.Signature:
		return "func"
	case *types.Interface:
		if t.Empty() {
			return "any"
		}
		return "interface"
	case *types.Struct:
		return "struct"
	default:
		return typ.String()
	}
}
