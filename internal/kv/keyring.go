package kv

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringService = "shopd"

// KeyringStore keeps values in the OS keychain/credential manager. Preferred
// over the file store for the session record, since the token is a credential.
type KeyringStore struct{}

// Get retrieves the value for key from the OS keychain/credential manager.
func (KeyringStore) Get(key string) (string, bool) {
	value, err := keyring.Get(keyringService, key)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set persists the value securely in the OS keychain/credential manager.
func (KeyringStore) Set(key, value string) error {
	if err := keyring.Set(keyringService, key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Remove deletes key from the OS keychain/credential manager.
func (KeyringStore) Remove(key string) error {
	if err := keyring.Delete(keyringService, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
