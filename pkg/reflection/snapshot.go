package reflection

// ClassSnapshot is an immutable, in-memory [Class].
type ClassSnapshot struct {
	ShortName     string             `yaml:"name"`
	NamespaceName string             `yaml:"namespace,omitempty"`
	ClassKind     Kind               `yaml:"kind,omitempty"`
	Doc           string             `yaml:"doc,omitempty"`
	Parents       []string           `yaml:"ancestors,omitempty"`
	ConstantList  []ConstantSnapshot `yaml:"constants,omitempty"`
	PropertyList  []PropertySnapshot `yaml:"properties,omitempty"`
	MethodList    []MethodSnapshot   `yaml:"methods,omitempty"`
}

func (c ClassSnapshot) Name() string       { return c.ShortName }
func (c ClassSnapshot) DocComment() string { return c.Doc }
func (c ClassSnapshot) Namespace() string  { return c.NamespaceName }
func (c ClassSnapshot) FullName() string   { return QualifiedName(c.NamespaceName, c.ShortName) }
func (c ClassSnapshot) Ancestors() []string {
	return c.Parents
}

// Kind defaults to [KindClass].
func (c ClassSnapshot) Kind() Kind {
	if c.ClassKind == "" {
		return KindClass
	}
	return c.ClassKind
}

func (c ClassSnapshot) Constants() []Constant {
	constants := make([]Constant, 0, len(c.ConstantList))
	for _, constant := range c.ConstantList {
		constants = append(constants, constant)
	}
	return constants
}

func (c ClassSnapshot) Properties() []Property {
	properties := make([]Property, 0, len(c.PropertyList))
	for _, property := range c.PropertyList {
		properties = append(properties, property)
	}
	return properties
}

func (c ClassSnapshot) Methods() []Method {
	methods := make([]Method, 0, len(c.MethodList))
	for _, method := range c.MethodList {
		methods = append(methods, method)
	}
	return methods
}

// MemberSnapshot holds the data shared by all member snapshots.
type MemberSnapshot struct {
	MemberName string `yaml:"name"`
	Doc        string `yaml:"doc,omitempty"`
	// Declaring is the fully-qualified name of the declaring class.
	Declaring string `yaml:"declaringClass,omitempty"`
}

func (m MemberSnapshot) Name() string           { return m.MemberName }
func (m MemberSnapshot) DocComment() string     { return m.Doc }
func (m MemberSnapshot) DeclaringClass() string { return m.Declaring }

// ConstantSnapshot is an immutable, in-memory [Constant].
type ConstantSnapshot struct {
	MemberSnapshot `yaml:",inline"`
}

// PropertySnapshot is an immutable, in-memory [Property].
type PropertySnapshot struct {
	MemberSnapshot `yaml:",inline"`
	Type           string `yaml:"type,omitempty"`
}

func (p PropertySnapshot) TypeName() string { return p.Type }

// MethodSnapshot is an immutable, in-memory [Method].
type MethodSnapshot struct {
	MemberSnapshot `yaml:",inline"`
	Params         []Parameter `yaml:"parameters,omitempty"`
	Return         string      `yaml:"return,omitempty"`
	Static         bool        `yaml:"static,omitempty"`
}

func (m MethodSnapshot) Parameters() []Parameter { return m.Params }
func (m MethodSnapshot) ReturnType() string      { return m.Return }
func (m MethodSnapshot) IsStatic() bool          { return m.Static }
