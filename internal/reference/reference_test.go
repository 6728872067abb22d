package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		expected string
	}{
		{
			name:     "empty",
			typeName: "",
			expected: "",
		},
		{
			name:     "simple name",
			typeName: "User",
			expected: ":ref:`User <user>`",
		},
		{
			name:     "namespaced name",
			typeName: `Foo\Bar`,
			expected: ":ref:`Foo\\\\Bar <foo-bar>`",
		},
		{
			name:     "leading and trailing separators",
			typeName: `\Foo\Bar\`,
			expected: ":ref:`Foo\\\\Bar <foo-bar>`",
		},
		{
			name:     "stray punctuation is removed from the identifier",
			typeName: `App\User[]`,
			expected: ":ref:`App\\\\User[] <app-user>`",
		},
		{
			name:     "union",
			typeName: `Foo|Bar`,
			expected: ":ref:`Foo <foo>` | :ref:`Bar <bar>`",
		},
		{
			name:     "union with spaces",
			typeName: `string | \App\Id`,
			expected: ":ref:`string <string>` | :ref:`App\\\\Id <app-id>`",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Create(tc.typeName))
		})
	}
}

func TestCreate_UnionIsJoinOfAlternatives(t *testing.T) {
	assert.Equal(t, Create("Foo")+" | "+Create("Bar"), Create("Foo|Bar"))
	assert.Equal(t, Create(`A\B`)+" | "+Create("C")+" | "+Create("null"), Create(`A\B|C|null`))
}

func TestCreate_IsDeterministic(t *testing.T) {
	assert.Equal(t, Create(`App\Model\User`), Create(`App\Model\User`))
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "foo-bar", Identifier(`Foo\Bar`))
	assert.Equal(t, "foo-bar", Identifier(`\Foo\Bar`))
	assert.Equal(t, "foo_bar", Identifier(`Foo_Bar`))
	assert.Equal(t, "", Identifier(`\`))
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, "app-model-user", Anchor(`App\Model\User`))
	assert.Equal(t, "-b", Anchor(`\B`))
	assert.Equal(t, ":ref:`app-base`", AnchorRef(`App\Base`))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `App\\Model\\User`, Escape(`App\Model\User`))
	assert.Equal(t, "User", Escape("User"))
}
