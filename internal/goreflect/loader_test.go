package goreflect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nieomylnieja/rstdoc/pkg/reflection"
	"github.com/nieomylnieja/rstdoc/pkg/rstdoc"
)

const testModelsNamespace = `github_com\nieomylnieja\rstdoc\internal\testmodels`

func loadTestModels(t *testing.T) map[string]reflection.Class {
	t.Helper()
	loader, err := NewLoader("", "./internal/testmodels")
	require.NoError(t, err)
	classes, err := loader.Classes()
	require.NoError(t, err)

	byName := make(map[string]reflection.Class, len(classes))
	names := make([]string, 0, len(classes))
	for _, class := range classes {
		byName[class.Name()] = class
		names = append(names, class.Name())
	}
	assert.Equal(t, []string{"Entity", "Model", "Repository", "Role", "User"}, names)
	return byName
}

func TestLoader_Classes(t *testing.T) {
	classes := loadTestModels(t)

	t.Run("class", func(t *testing.T) {
		user := classes["User"]
		assert.Equal(t, testModelsNamespace, user.Namespace())
		assert.Equal(t, testModelsNamespace+`\User`, user.FullName())
		assert.Equal(t, reflection.KindClass, user.Kind())
		assert.Equal(t,
			"User of the application.\n\nUsers are identified by their e-mail address.\n",
			user.DocComment())
		assert.Equal(t, []string{
			testModelsNamespace + `\Model`,
			testModelsNamespace + `\Entity`,
		}, user.Ancestors())
	})

	t.Run("properties", func(t *testing.T) {
		properties := classes["User"].Properties()
		require.Len(t, properties, 4)

		type property struct{ name, typ, declaring, doc string }
		actual := make([]property, 0, len(properties))
		for _, p := range properties {
			actual = append(actual, property{p.Name(), p.TypeName(), p.DeclaringClass(), p.DocComment()})
		}
		assert.Equal(t, []property{
			{"Email", "string", testModelsNamespace + `\User`, "Email is the e-mail address.\n"},
			{"Roles", testModelsNamespace + `\Role[]`, testModelsNamespace + `\User`, ""},
			{"CreatedAt", "int64", testModelsNamespace + `\Model`, "CreatedAt is a Unix timestamp.\n"},
			{"ID", "int64", testModelsNamespace + `\Entity`, "ID is the unique identifier.\n"},
		}, actual)
	})

	t.Run("methods", func(t *testing.T) {
		methods := classes["User"].Methods()
		require.Len(t, methods, 3)

		identifier, save, touch := methods[0], methods[1], methods[2]
		assert.Equal(t, "Identifier", identifier.Name())
		assert.Equal(t, testModelsNamespace+`\User`, identifier.DeclaringClass())
		assert.Equal(t, "Identifier returns the e-mail address hash.\n", identifier.DocComment())
		assert.Equal(t, "int64", identifier.ReturnType())

		assert.Equal(t, "Save", save.Name())
		assert.Equal(t, "bool, error", save.ReturnType())
		assert.False(t, save.IsStatic())
		assert.Equal(t, []reflection.Parameter{
			{Name: "force", TypeName: "bool"},
			{Name: "fields", TypeName: "string", Variadic: true},
		}, save.Parameters())

		assert.Equal(t, "Touch", touch.Name())
		assert.Equal(t, testModelsNamespace+`\Model`, touch.DeclaringClass())
		assert.Empty(t, touch.ReturnType())
	})

	t.Run("constants", func(t *testing.T) {
		role := classes["Role"]
		assert.Empty(t, role.Ancestors())
		constants := role.Constants()
		require.Len(t, constants, 2)
		assert.Equal(t, "RoleAdmin", constants[0].Name())
		assert.Equal(t, "RoleAdmin can do anything.\n", constants[0].DocComment())
		assert.Equal(t, testModelsNamespace+`\Role`, constants[0].DeclaringClass())
		assert.Equal(t, "RoleGuest", constants[1].Name())
		assert.Equal(t, "RoleGuest can only read.\n", constants[1].DocComment())
	})

	t.Run("doc links", func(t *testing.T) {
		assert.Equal(t, "Role grants permissions to a User.\n", classes["Role"].DocComment())
	})

	t.Run("interface", func(t *testing.T) {
		repository := classes["Repository"]
		assert.Equal(t, reflection.KindInterface, repository.Kind())
		assert.Equal(t, []string{`fmt\Stringer`}, repository.Ancestors())
		assert.Empty(t, repository.Properties())

		methods := repository.Methods()
		require.Len(t, methods, 2)
		assert.Equal(t, "Find", methods[0].Name())
		assert.Equal(t, testModelsNamespace+`\Repository`, methods[0].DeclaringClass())
		assert.Equal(t, testModelsNamespace+`\User, error`, methods[0].ReturnType())
		assert.Equal(t, "String", methods[1].Name())
		assert.Equal(t, `fmt\Stringer`, methods[1].DeclaringClass())
	})

	t.Run("all classes are valid", func(t *testing.T) {
		for name, class := range classes {
			assert.NoError(t, reflection.ValidateClass(class), name)
		}
	})
}

func TestLoader_Render(t *testing.T) {
	classes := loadTestModels(t)

	element, err := rstdoc.NewClassElement(classes["User"])
	require.NoError(t, err)
	document := element.Render()

	assert.True(t, strings.HasPrefix(document,
		".. _github_com-nieomylnieja-rstdoc-internal-testmodels-user:\n\n"))
	assert.Contains(t, document, ".. php:namespace:: "+strings.ReplaceAll(testModelsNamespace, `\`, `\\`)+"\n")
	assert.Contains(t, document, "Inheritance:\n")
	assert.Contains(t, document, ".. php:class:: User\n")
	assert.Contains(t, document, ".. php:method:: Save($force, ...$fields)\n")
	assert.Contains(t, document, ":returns: :ref:`bool <bool>`")
	assert.Contains(t, document, ".. php:attr:: Email\n")
	assert.NotContains(t, document, "php:method:: Touch")
	assert.NotContains(t, document, "php:attr:: ID")
}

func TestNewLoader(t *testing.T) {
	t.Run("invalid package", func(t *testing.T) {
		_, err := NewLoader("", "./internal/does-not-exist")
		require.Error(t, err)
	})

	t.Run("outside of a module", func(t *testing.T) {
		_, err := NewLoader("/")
		require.Error(t, err)
	})
}
