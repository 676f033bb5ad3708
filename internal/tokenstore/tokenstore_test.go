package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "token")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Read(ctx)
		require.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("round trip keeps token verbatim", func(t *testing.T) {
		token := "  spaced token\t"
		require.NoError(t, store.Write(ctx, token))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		got, err := store.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, token, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "second"))
		got, err := store.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, "second", got)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1, "temp files must not be left behind")
	})

	t.Run("carriage return is part of the token", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "abc\r"))
		got, err := store.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, "abc\r", got)

		require.NoError(t, os.WriteFile(path, []byte("abc\r\n"), 0o600))
		got, err = store.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, "abc\r", got)
	})

	t.Run("empty file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))
		_, err := store.Read(ctx)
		require.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("insecure permissions", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("abc\n"), 0o600))
		require.NoError(t, os.Chmod(path, 0o644))
		_, err := store.Read(ctx)
		require.ErrorContains(t, err, "insecure permissions")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		require.ErrorIs(t, store.Write(cctx, "x"), context.Canceled)
		_, err := store.Read(cctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore("")
	require.Error(t, err)
}

func TestEnvStore(t *testing.T) {
	ctx := context.Background()

	_, err := NewEnvStore("")
	require.Error(t, err)

	store, err := NewEnvStore("ELIQ_TEST_ACCESS_TOKEN")
	require.NoError(t, err)

	t.Run("unset", func(t *testing.T) {
		_, err := store.Read(ctx)
		require.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv("ELIQ_TEST_ACCESS_TOKEN", " raw-token ")
		got, err := store.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, " raw-token ", got)
	})

	t.Run("read-only", func(t *testing.T) {
		require.ErrorIs(t, store.Write(ctx, "x"), ErrReadOnly)
	})
}

func TestKeyringStore(t *testing.T) {
	keyring.MockInit()
	ctx := context.Background()

	_, err := NewKeyringStore("", "user")
	require.Error(t, err)
	_, err = NewKeyringStore(KeyringService, "")
	require.Error(t, err)

	store, err := NewKeyringStore(KeyringService, "alice")
	require.NoError(t, err)

	_, err = store.Read(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Write(ctx, "keyring-token"))
	got, err := store.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, "keyring-token", got)
}
