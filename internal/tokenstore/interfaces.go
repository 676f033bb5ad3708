package tokenstore

import (
	"context"
	"errors"
)

var (
	// ErrNoToken is returned by Read when the backend holds no token.
	ErrNoToken = errors.New("no access token stored")
	// ErrReadOnly is returned by Write on backends that cannot be written.
	ErrReadOnly = errors.New("token store is read-only")
)

// TokenStore reads and writes the access token.
type TokenStore interface {
	// Read returns the stored token. Returns ErrNoToken if there is none.
	Read(ctx context.Context) (string, error)

	// Write replaces the stored token. Returns ErrReadOnly for read-only backends.
	Write(ctx context.Context, token string) error
}
