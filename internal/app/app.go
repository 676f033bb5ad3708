package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/florianilch/eliqonline"
	"github.com/florianilch/eliqonline/internal/tokenstore"
)

// ResponseKind names an API endpoint whose response bodies can be decoded.
type ResponseKind string

const (
	ResponseKindDataNow ResponseKind = "now"
	ResponseKindData    ResponseKind = "data"
)

// maxConcurrentDecodes bounds open files during DecodeFiles.
const maxConcurrentDecodes = 8

// App ties configuration, token storage and the API client together.
type App struct {
	cfg   *Config
	store tokenstore.TokenStore
}

// New creates a new App instance. No I/O is performed.
func New(cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := cfg.Auth.NewTokenStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create token store: %w", err)
	}

	return &App{
		cfg:   cfg,
		store: store,
	}, nil
}

// API reads the stored access token and returns a client for it.
func (a *App) API(ctx context.Context) (*eliqonline.API, error) {
	token, err := a.store.Read(ctx)
	if err != nil {
		if errors.Is(err, tokenstore.ErrNoToken) {
			return nil, fmt.Errorf("%w (run \"eliq token set\" first)", err)
		}
		return nil, fmt.Errorf("reading access token: %w", err)
	}

	slog.DebugContext(ctx, "access token loaded", "storage", a.cfg.Auth.Storage)

	return eliqonline.NewAPI(token, eliqonline.WithBaseURL(a.cfg.API.BaseURL)), nil
}

// StoreToken writes token to the configured storage exactly as given.
func (a *App) StoreToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("access token cannot be empty")
	}

	if err := a.store.Write(ctx, token); err != nil {
		return fmt.Errorf("storing access token: %w", err)
	}

	slog.InfoContext(ctx, "access token stored", "storage", a.cfg.Auth.Storage)
	return nil
}

// DecodeFiles decodes saved response bodies of the given kind concurrently.
// Results are in the order of paths; the first failure cancels the rest.
func (a *App) DecodeFiles(ctx context.Context, kind ResponseKind, paths []string) ([]any, error) {
	decode, err := decoderFor(kind)
	if err != nil {
		return nil, err
	}

	results := make([]any, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDecodes)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			v, err := decodeFile(path, decode)
			if err != nil {
				slog.DebugContext(gCtx, "decode failed", "path", path, "error", err)
				return fmt.Errorf("%s: %w", path, err)
			}

			slog.DebugContext(gCtx, "decoded response", "path", path, "kind", kind)
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type decodeFunc func(f *os.File) (any, error)

func decoderFor(kind ResponseKind) (decodeFunc, error) {
	switch kind {
	case ResponseKindDataNow:
		return func(f *os.File) (any, error) { return eliqonline.DecodeDataNow(f) }, nil
	case ResponseKindData:
		return func(f *os.File) (any, error) { return eliqonline.DecodeData(f) }, nil
	default:
		return nil, fmt.Errorf("unsupported response kind: %q", kind)
	}
}

func decodeFile(path string, decode decodeFunc) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return decode(f)
}
