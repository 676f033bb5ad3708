package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/florianilch/eliqonline"
	"github.com/florianilch/eliqonline/internal/tokenstore"
)

func newFileApp(t *testing.T) *App {
	t.Helper()
	cfg := &Config{Auth: AuthConfig{Storage: TokenStorageTypeFile, File: filepath.Join(t.TempDir(), "token")}}
	require.NoError(t, cfg.ApplyDefaults())

	a, err := New(cfg)
	require.NoError(t, err)
	return a
}

func TestAppTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := newFileApp(t)

	_, err := a.API(ctx)
	require.ErrorIs(t, err, tokenstore.ErrNoToken)

	require.Error(t, a.StoreToken(ctx, ""))
	require.NoError(t, a.StoreToken(ctx, "my-token"))

	api, err := a.API(ctx)
	require.NoError(t, err)
	require.Equal(t, "my-token", api.Tools().AccessToken())

	req, err := api.DataNowRequest(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, "my.eliq.se", req.URL.Host)
}

func TestAppEnvStorageIsReadOnly(t *testing.T) {
	ctx := context.Background()
	t.Setenv(DefaultConfigAuthEnvKey, "env-token")

	cfg := &Config{Auth: AuthConfig{Storage: TokenStorageTypeEnv}}
	require.NoError(t, cfg.ApplyDefaults())
	a, err := New(cfg)
	require.NoError(t, err)

	api, err := a.API(ctx)
	require.NoError(t, err)
	require.Equal(t, "env-token", api.Tools().AccessToken())

	require.ErrorIs(t, a.StoreToken(ctx, "other"), tokenstore.ErrReadOnly)
}

func TestAppDecodeFiles(t *testing.T) {
	ctx := context.Background()
	a := newFileApp(t)
	dir := t.TempDir()

	var paths []string
	for i := range 20 {
		path := filepath.Join(dir, fmt.Sprintf("now-%02d.json", i))
		body := fmt.Sprintf(`{"channelid": %d, "createddate": "2015-06-20T23:31:50", "power": "%d.5"}`, i, i)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		paths = append(paths, path)
	}

	results, err := a.DecodeFiles(ctx, ResponseKindDataNow, paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		now, ok := r.(*eliqonline.DataNow)
		require.True(t, ok)
		require.Equal(t, i, now.ChannelID, "results keep input order")
		require.Equal(t, float64(i)+0.5, *now.Power)
	}
}

func TestAppDecodeFilesErrors(t *testing.T) {
	ctx := context.Background()
	a := newFileApp(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"data": []}`), 0o600))
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"startdate": "June", "data": []}`), 0o600))

	t.Run("format error names the file", func(t *testing.T) {
		_, err := a.DecodeFiles(ctx, ResponseKindData, []string{good, bad})
		require.ErrorIs(t, err, eliqonline.ErrFormat)
		require.ErrorContains(t, err, "bad.json")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := a.DecodeFiles(ctx, ResponseKindData, []string{filepath.Join(dir, "absent.json")})
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := a.DecodeFiles(ctx, ResponseKind("weekly"), []string{good})
		require.ErrorContains(t, err, "weekly")
	})
}
