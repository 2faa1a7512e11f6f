package tokenstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStorage(t *testing.T) {
	t.Run("EmptyStorageHasNoToken", func(t *testing.T) {
		storage := NewFileTokenStorage(filepath.Join(t.TempDir(), "token"))

		token, ok := storage.Token()
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("SaveThenRead", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "six-cities", "token")
		storage := NewFileTokenStorage(path)

		require.NoError(t, storage.Save("secret-token"))

		token, ok := storage.Token()
		assert.True(t, ok)
		assert.Equal(t, "secret-token", token)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("SaveReplacesPrevious", func(t *testing.T) {
		storage := NewFileTokenStorage(filepath.Join(t.TempDir(), "token"))

		require.NoError(t, storage.Save("first"))
		require.NoError(t, storage.Save("second"))

		token, _ := storage.Token()
		assert.Equal(t, "second", token)
	})

	t.Run("ClearRemovesToken", func(t *testing.T) {
		storage := NewFileTokenStorage(filepath.Join(t.TempDir(), "token"))
		require.NoError(t, storage.Save("secret-token"))

		require.NoError(t, storage.Clear())

		_, ok := storage.Token()
		assert.False(t, ok)
	})

	t.Run("ClearOnEmptyStorageIsNoop", func(t *testing.T) {
		storage := NewFileTokenStorage(filepath.Join(t.TempDir(), "token"))
		assert.NoError(t, storage.Clear())
	})

	t.Run("WhitespaceOnlyFileMeansNoToken", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

		_, ok := NewFileTokenStorage(path).Token()
		assert.False(t, ok)
	})
}
