package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name the token is filed under in the OS keyring.
const KeyringService = "eliqonline-access-token"

// KeyringStore keeps the token in the OS-native credential store.
type KeyringStore struct {
	service string
	user    string
}

// Compile-time check to ensure KeyringStore implements TokenStore
var _ TokenStore = (*KeyringStore)(nil)

// NewKeyringStore creates a KeyringStore for the given service and user.
func NewKeyringStore(service, user string) (*KeyringStore, error) {
	if service == "" {
		return nil, errors.New("service cannot be empty")
	}
	if user == "" {
		return nil, errors.New("user cannot be empty")
	}

	return &KeyringStore{
		service: service,
		user:    user,
	}, nil
}

// Read returns the token from the keyring.
func (k *KeyringStore) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token, err := keyring.Get(k.service, k.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%w: no keyring entry for service %s, user %s", ErrNoToken, k.service, k.user)
	}
	if err != nil {
		return "", fmt.Errorf("reading keyring: %w", err)
	}
	if token == "" {
		return "", fmt.Errorf("%w: empty keyring entry for service %s, user %s", ErrNoToken, k.service, k.user)
	}

	return token, nil
}

// Write stores the token, overwriting any existing entry.
func (k *KeyringStore) Write(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := keyring.Set(k.service, k.user, token); err != nil {
		return fmt.Errorf("writing keyring: %w", err)
	}
	return nil
}
