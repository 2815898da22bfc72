package settings

import (
	"context"

	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
)

type Settings struct {
	APIKey string `json:"apiKey,omitempty"`
}

type CredentialStore struct {
	store *Store[Settings]
}

// GetAPIKey implements port.CredentialStore.
func (s *CredentialStore) GetAPIKey(ctx context.Context) (string, error) {
	settings, err := s.store.Get()
	if err != nil {
		return "", errors.WithStack(err)
	}

	if settings.APIKey == "" {
		return "", errors.WithStack(port.ErrNotFound)
	}

	return settings.APIKey, nil
}

// SetAPIKey implements port.CredentialStore.
func (s *CredentialStore) SetAPIKey(ctx context.Context, apiKey string) error {
	settings, err := s.store.Get()
	if err != nil {
		return errors.WithStack(err)
	}

	settings.APIKey = apiKey

	if err := s.store.Save(settings); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteAPIKey implements port.CredentialStore.
func (s *CredentialStore) DeleteAPIKey(ctx context.Context) error {
	settings, err := s.store.Get()
	if err != nil {
		return errors.WithStack(err)
	}

	if settings.APIKey == "" {
		return nil
	}

	settings.APIKey = ""

	if err := s.store.Save(settings); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Location implements port.CredentialStore.
func (s *CredentialStore) Location() string {
	return s.store.Path()
}

func NewCredentialStore(funcs ...OptionFunc) *CredentialStore {
	return &CredentialStore{
		store: NewStore(Settings{}, funcs...),
	}
}

var _ port.CredentialStore = &CredentialStore{}
