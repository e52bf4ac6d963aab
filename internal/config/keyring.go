// internal/config/keyring.go
package config

import (
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "querypad"

// KeyringStore holds secrets in the system keyring; it stores the master
// key that encrypts connection passwords in the config file.
type KeyringStore struct {
	ring keyring.Keyring
}

// NewKeyringStore opens the service keyring.
func NewKeyringStore() (*KeyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return &KeyringStore{ring: ring}, nil
}

// SetSecret stores a named secret.
func (k *KeyringStore) SetSecret(name, value string) error {
	return k.ring.Set(keyring.Item{
		Key:  name,
		Data: []byte(value),
	})
}

// GetSecret retrieves a named secret.
func (k *KeyringStore) GetSecret(name string) (string, error) {
	item, err := k.ring.Get(name)
	if err != nil {
		return "", fmt.Errorf("secret not found: %s", name)
	}
	return string(item.Data), nil
}

// DeleteSecret removes a named secret.
func (k *KeyringStore) DeleteSecret(name string) error {
	return k.ring.Remove(name)
}
