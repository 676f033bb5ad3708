package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// EnvStore reads the token from an environment variable.
type EnvStore struct {
	envKey string
}

// Compile-time check to ensure EnvStore implements TokenStore
var _ TokenStore = (*EnvStore)(nil)

// NewEnvStore creates an EnvStore for the given variable name. The variable is
// looked up on every Read, so it need not be set yet.
func NewEnvStore(envKey string) (*EnvStore, error) {
	if envKey == "" {
		return nil, errors.New("environment key cannot be empty")
	}

	return &EnvStore{envKey: envKey}, nil
}

// Read returns the variable's value. An unset or empty variable yields ErrNoToken.
func (e *EnvStore) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token, ok := os.LookupEnv(e.envKey)
	if !ok || token == "" {
		return "", fmt.Errorf("%w: environment variable %s is unset or empty", ErrNoToken, e.envKey)
	}
	return token, nil
}

// Write always fails: a process cannot persist its own environment.
func (e *EnvStore) Write(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("%w: set %s in the environment instead", ErrReadOnly, e.envKey)
}
