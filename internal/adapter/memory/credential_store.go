package memory

import (
	"context"
	"sync"

	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
)

// CredentialStore keeps the API key in memory for the lifetime of the process.
type CredentialStore struct {
	apiKey string
	mutex  sync.RWMutex
}

// GetAPIKey implements port.CredentialStore.
func (s *CredentialStore) GetAPIKey(ctx context.Context) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.apiKey == "" {
		return "", errors.WithStack(port.ErrNotFound)
	}

	return s.apiKey, nil
}

// SetAPIKey implements port.CredentialStore.
func (s *CredentialStore) SetAPIKey(ctx context.Context, apiKey string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.apiKey = apiKey

	return nil
}

// DeleteAPIKey implements port.CredentialStore.
func (s *CredentialStore) DeleteAPIKey(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.apiKey = ""

	return nil
}

// Location implements port.CredentialStore.
func (s *CredentialStore) Location() string {
	return "memory://"
}

func NewCredentialStore(apiKey string) *CredentialStore {
	return &CredentialStore{
		apiKey: apiKey,
	}
}

var _ port.CredentialStore = &CredentialStore{}
