// Package reflection defines the read-only view of classes and their members
// consumed by the documentation renderer.
//
// Implementations are provided by snapshots ([ClassSnapshot]), which can be
// loaded from a YAML manifest with [LoadManifest], or by adapters over a
// language's own reflection facility.
package reflection

import "strings"

// NamespaceSeparator separates namespace segments in fully-qualified names.
const NamespaceSeparator = `\`

// Kind distinguishes classes, interfaces and traits.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindTrait     Kind = "trait"
)

// Entity is any reflected code entity.
type Entity interface {
	// Name is the simple, unqualified name.
	Name() string
	// DocComment is the raw documentation comment, it may be empty.
	DocComment() string
}

// Class is a reflected class, interface or trait.
type Class interface {
	Entity
	FullName() string
	Namespace() string
	Kind() Kind
	// Ancestors lists fully-qualified names of the parent classes, nearest first.
	Ancestors() []string
	// Constants, Properties and Methods include inherited members.
	// Use [Member.DeclaringClass] to tell them apart.
	Constants() []Constant
	Properties() []Property
	Methods() []Method
}

// Member is a reflected class member.
type Member interface {
	Entity
	// DeclaringClass is the fully-qualified name of the class which declares the member.
	DeclaringClass() string
}

type Constant interface {
	Member
}

type Property interface {
	Member
	// TypeName is the declared type, it may be empty.
	TypeName() string
}

type Method interface {
	Member
	Parameters() []Parameter
	// ReturnType is the declared return type, it may be empty.
	// Multiple return values are separated with commas.
	ReturnType() string
	IsStatic() bool
}

// Parameter describes a single method parameter.
type Parameter struct {
	Name         string `yaml:"name"`
	TypeName     string `yaml:"type,omitempty"`
	DefaultValue string `yaml:"default,omitempty"`
	HasDefault   bool   `yaml:"hasDefault,omitempty"`
	Variadic     bool   `yaml:"variadic,omitempty"`
}

// QualifiedName joins namespace and name with [NamespaceSeparator].
// Names in the global namespace are returned as is.
func QualifiedName(namespace, name string) string {
	namespace = strings.Trim(namespace, NamespaceSeparator)
	if namespace == "" {
		return name
	}
	return namespace + NamespaceSeparator + name
}
