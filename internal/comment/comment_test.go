package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSaveDocBlock = `/**
     * Saves the user.
     *
     * Dirty fields are flushed first.
     *
     * @param bool $force Skip dirty checks
     *   and write everything.
     * @param $dryRun
     * @param int|null ...$ids Identifiers.
     * @return bool True on success.
     * @throws \App\Error\SaveError When the write fails.
     */`

func TestParse(t *testing.T) {
	t.Run("empty comment", func(t *testing.T) {
		doc := Parse("")
		assert.Empty(t, doc.Description)
		assert.Empty(t, doc.Tags)
	})

	t.Run("empty docblock", func(t *testing.T) {
		doc := Parse("/** */")
		assert.Empty(t, doc.Description)
		assert.Empty(t, doc.Tags)
	})

	t.Run("single line docblock", func(t *testing.T) {
		doc := Parse("/** A user of the application. */")
		assert.Equal(t, "A user of the application.", doc.Description)
	})

	t.Run("bare text", func(t *testing.T) {
		doc := Parse("Role grants permissions.\n\nIt is immutable.\n")
		assert.Equal(t, "Role grants permissions.\n\nIt is immutable.", doc.Description)
	})

	t.Run("description and tags", func(t *testing.T) {
		doc := Parse(userSaveDocBlock)
		assert.Equal(t, "Saves the user.\n\nDirty fields are flushed first.", doc.Description)
		require.Len(t, doc.Tags, 5)
		assert.Equal(t, Tag{Name: "param", Value: "bool $force Skip dirty checks\nand write everything."}, doc.Tags[0])
		assert.Equal(t, Tag{Name: "param", Value: "$dryRun"}, doc.Tags[1])
		assert.Equal(t, "return", doc.Tags[3].Name)
	})

	t.Run("only tags", func(t *testing.T) {
		doc := Parse("/**\n * @var string\n */")
		assert.Empty(t, doc.Description)
		assert.Equal(t, []Tag{{Name: "var", Value: "string"}}, doc.Tags)
	})
}

func TestDoc_Params(t *testing.T) {
	doc := Parse(userSaveDocBlock)
	assert.Equal(t, []Param{
		{Name: "force", Type: "bool", Description: "Skip dirty checks\nand write everything."},
		{Name: "dryRun"},
		{Name: "ids", Type: "int|null", Description: "Identifiers."},
	}, doc.Params())

	param, found := doc.Param("$ids")
	require.True(t, found)
	assert.Equal(t, "int|null", param.Type)

	_, found = doc.Param("missing")
	assert.False(t, found)
}

func TestDoc_Return(t *testing.T) {
	typ, description := Parse(userSaveDocBlock).Return()
	assert.Equal(t, "bool", typ)
	assert.Equal(t, "True on success.", description)

	typ, description = Parse("@returns static").Return()
	assert.Equal(t, "static", typ)
	assert.Empty(t, description)

	typ, _ = Parse("No tags.").Return()
	assert.Empty(t, typ)
}

func TestDoc_Throws(t *testing.T) {
	assert.Equal(t, []Throw{
		{Type: `\App\Error\SaveError`, Description: "When the write fails."},
	}, Parse(userSaveDocBlock).Throws())
}

func TestDoc_Var(t *testing.T) {
	tests := []struct {
		name        string
		comment     string
		typ         string
		description string
	}{
		{
			name:    "type only",
			comment: "/** @var string */",
			typ:     "string",
		},
		{
			name:        "type, name and description",
			comment:     "/** @var \\App\\Id $id The identifier. */",
			typ:         `\App\Id`,
			description: "The identifier.",
		},
		{
			name:        "name only",
			comment:     "/** @var $id The identifier. */",
			description: "The identifier.",
		},
		{
			name:    "no tag",
			comment: "/** Something. */",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			typ, description := Parse(tc.comment).Var()
			assert.Equal(t, tc.typ, typ)
			assert.Equal(t, tc.description, description)
		})
	}
}
