package filestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Run("read existing", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "x.txt"), []byte("hello"), 0o644))

		data, err := New(dir).Read("x.txt")
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))
	})

	t.Run("read missing", func(t *testing.T) {
		_, err := New(t.TempDir()).Read(uniuri.New())
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, err, fs.ErrNotExist)
		require.Equal(t, status.NotFound, status.CodeOf(err))
	})

	t.Run("read directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

		_, err := New(dir).Read("sub")
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, err, errIsDir)
	})

	t.Run("read empty", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), nil, 0o644))

		data, err := New(dir).Read("empty")
		require.NoError(t, err)
		require.Empty(t, data)
	})

	t.Run("read unreadable", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}

		dir := t.TempDir()
		path := filepath.Join(dir, "secret")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))

		_, err := New(dir).Read("secret")
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, err, fs.ErrPermission)
	})

	t.Run("write then read", func(t *testing.T) {
		store := New(t.TempDir())
		name := uniuri.New() + ".txt"

		require.NoError(t, store.Write(name, []byte("data")))
		data, err := store.Read(name)
		require.NoError(t, err)
		require.Equal(t, "data", string(data))
	})

	t.Run("write truncates", func(t *testing.T) {
		store := New(t.TempDir())

		require.NoError(t, store.Write("a", []byte("long content")))
		require.NoError(t, store.Write("a", []byte("short")))
		data, err := store.Read("a")
		require.NoError(t, err)
		require.Equal(t, "short", string(data))
	})

	t.Run("write into missing directory", func(t *testing.T) {
		store := New(filepath.Join(t.TempDir(), "missing"))

		err := store.Write("a", []byte("data"))
		require.ErrorIs(t, err, ErrNotFound)
		require.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("disabled", func(t *testing.T) {
		store := New("")
		require.False(t, store.Enabled())

		_, err := store.Read("a")
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, store.Write("a", nil), ErrNotFound)
	})
}
