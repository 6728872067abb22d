package reflection

import (
	"strings"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
)

// ValidateClass checks that the class and all of its members carry the metadata
// required to render them.
func ValidateClass(class Class) error {
	if class == nil {
		return errors.New("class reflection must not be nil")
	}
	if err := classValidator.Validate(class); err != nil {
		return errors.Wrapf(err, "invalid reflection of class %s", class.FullName())
	}
	return nil
}

// ValidateConstant checks that the constant carries the metadata required to render it.
func ValidateConstant(constant Constant) error {
	if constant == nil {
		return errors.New("constant reflection must not be nil")
	}
	return errors.Wrapf(constantValidator.Validate(constant),
		"invalid reflection of constant %s", constant.Name())
}

// ValidateProperty checks that the property carries the metadata required to render it.
func ValidateProperty(property Property) error {
	if property == nil {
		return errors.New("property reflection must not be nil")
	}
	return errors.Wrapf(propertyValidator.Validate(property),
		"invalid reflection of property %s", property.Name())
}

// ValidateMethod checks that the method carries the metadata required to render it.
func ValidateMethod(method Method) error {
	if method == nil {
		return errors.New("method reflection must not be nil")
	}
	return errors.Wrapf(methodValidator.Validate(method),
		"invalid reflection of method %s", method.Name())
}

var simpleNameRule = govy.NewRule(func(name string) error {
	if strings.Contains(name, NamespaceSeparator) {
		return errors.Errorf("simple name must not contain %q", NamespaceSeparator)
	}
	return nil
}).WithDescription("must be a simple, unqualified name")

var classValidator = govy.New(
	govy.For(func(c Class) string { return c.Name() }).
		WithName("name").
		Required().
		Rules(simpleNameRule),
	govy.For(func(c Class) Kind { return c.Kind() }).
		WithName("kind").
		Required().
		Rules(rules.OneOf(KindClass, KindInterface, KindTrait)),
	govy.ForSlice(func(c Class) []string { return c.Ancestors() }).
		WithName("ancestors").
		RulesForEach(rules.StringNotEmpty()),
	govy.ForSlice(func(c Class) []Constant { return c.Constants() }).
		WithName("constants").
		IncludeForEach(constantValidator),
	govy.ForSlice(func(c Class) []Property { return c.Properties() }).
		WithName("properties").
		IncludeForEach(propertyValidator),
	govy.ForSlice(func(c Class) []Method { return c.Methods() }).
		WithName("methods").
		IncludeForEach(methodValidator),
).WithName("Class")

var constantValidator = newMemberValidator[Constant]("Constant")

var propertyValidator = newMemberValidator[Property]("Property")

var methodValidator = govy.New(
	govy.For(func(m Method) string { return m.Name() }).
		WithName("name").
		Required().
		Rules(simpleNameRule),
	govy.For(func(m Method) string { return m.DeclaringClass() }).
		WithName("declaringClass").
		Required(),
	govy.ForSlice(func(m Method) []Parameter { return m.Parameters() }).
		WithName("parameters").
		IncludeForEach(parameterValidator),
).WithName("Method")

var parameterValidator = govy.New(
	govy.For(func(p Parameter) string { return p.Name }).
		WithName("name").
		Required(),
).WithName("Parameter")

func newMemberValidator[M Member](name string) govy.Validator[M] {
	return govy.New(
		govy.For(func(m M) string { return m.Name() }).
			WithName("name").
			Required().
			Rules(simpleNameRule),
		govy.For(func(m M) string { return m.DeclaringClass() }).
			WithName("declaringClass").
			Required(),
	).WithName(name)
}
