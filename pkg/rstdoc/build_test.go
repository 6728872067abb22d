package rstdoc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nieomylnieja/rstdoc/pkg/reflection"
)

func TestBuild(t *testing.T) {
	t.Run("writes one document per class", func(t *testing.T) {
		outDir := filepath.Join(t.TempDir(), "docs")
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		classes := []reflection.Class{
			userClass(),
			reflection.ClassSnapshot{ShortName: "Base", NamespaceName: "App", ClassKind: reflection.KindTrait},
		}

		err := Build(context.Background(), outDir, classes, WithLogger(logger), WithConcurrency(1))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(outDir, "User.rst"))
		require.NoError(t, err)
		assert.Equal(t, expectedUserDocument, string(data))
		data, err = os.ReadFile(filepath.Join(outDir, "Base.rst"))
		require.NoError(t, err)
		assert.Contains(t, string(data), ".. php:trait:: Base")

		require.Len(t, hook.AllEntries(), 3)
		last := hook.LastEntry()
		assert.Equal(t, logrus.InfoLevel, last.Level)
		assert.Equal(t, 2, last.Data["documents"])
	})

	t.Run("inherited members option is applied", func(t *testing.T) {
		outDir := t.TempDir()
		logger, _ := test.NewNullLogger()
		err := Build(context.Background(), outDir, []reflection.Class{userClass()},
			WithLogger(logger), WithInheritedMembers())
		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(outDir, "User.rst"))
		require.NoError(t, err)
		assert.Contains(t, string(data), ".. php:method:: delete()")
	})

	t.Run("invalid class aborts before writing", func(t *testing.T) {
		outDir := filepath.Join(t.TempDir(), "docs")
		logger, _ := test.NewNullLogger()
		classes := []reflection.Class{
			userClass(),
			reflection.ClassSnapshot{NamespaceName: "App"},
		}
		err := Build(context.Background(), outDir, classes, WithLogger(logger))
		require.Error(t, err)
		_, statErr := os.Stat(outDir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("conflicting document paths", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		classes := []reflection.Class{
			reflection.ClassSnapshot{ShortName: "User", NamespaceName: `App\Model`},
			reflection.ClassSnapshot{ShortName: "User", NamespaceName: `App\Security`},
		}
		err := Build(context.Background(), t.TempDir(), classes, WithLogger(logger))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "User.rst")
	})

	t.Run("canceled context", func(t *testing.T) {
		outDir := t.TempDir()
		logger, _ := test.NewNullLogger()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Build(ctx, outDir, []reflection.Class{userClass()}, WithLogger(logger))
		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(filepath.Join(outDir, "User.rst"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestNewOptions(t *testing.T) {
	options := newOptions()
	assert.False(t, options.includeInherited)
	assert.Equal(t, logrus.StandardLogger(), options.logger)
	assert.Positive(t, options.concurrency)

	options = newOptions(WithConcurrency(3), WithInheritedMembers())
	assert.Equal(t, 3, options.concurrency)
	assert.True(t, options.includeInherited)
}
