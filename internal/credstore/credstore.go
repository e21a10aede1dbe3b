// Package credstore provides secure storage for registry credentials using
// the platform keyring (macOS Keychain, Secret Service, wincred, or an
// encrypted file fallback).
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

// serviceName is the keyring service identifier for all dockhand credentials.
const serviceName = "dockhand"

// registryKey is the keyring item key holding registry credentials.
const registryKey = "registry"

// ErrNotFound is returned when no credentials are stored.
var ErrNotFound = errors.New("credentials not found")

// Credentials holds a registry username and password (or personal access
// token), sent as basic auth on the token endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Store persists registry credentials.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/store.go . Store
type Store interface {
	// Set stores registry credentials, replacing any existing entry.
	Set(creds Credentials) error

	// Get retrieves stored registry credentials.
	// Returns ErrNotFound if none are stored.
	Get() (Credentials, error)

	// Delete removes stored registry credentials.
	// Returns nil if none are stored.
	Delete() error
}

type store struct {
	ring keyring.Keyring
}

// New opens the platform keyring and returns a Store backed by it.
func New() (Store, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return &store{ring: ring}, nil
}

// NewWithKeyring returns a Store backed by the given keyring.
// Used in tests with keyring.NewArrayKeyring.
func NewWithKeyring(ring keyring.Keyring) Store {
	return &store{ring: ring}
}

func (s *store) Set(creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	err = s.ring.Set(keyring.Item{
		Key:   registryKey,
		Label: "dockhand registry credentials",
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	return nil
}

func (s *store) Get() (Credentials, error) {
	item, err := s.ring.Get(registryKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return Credentials{}, ErrNotFound
		}
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(item.Data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

func (s *store) Delete() error {
	err := s.ring.Remove(registryKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}
