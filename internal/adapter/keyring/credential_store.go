package keyring

import (
	"context"
	"fmt"

	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

const (
	DefaultService = "zerohost-cli"
	defaultUser    = "api-key"
)

// CredentialStore keeps the API key in the operating system keyring.
type CredentialStore struct {
	service string
	user    string
}

// GetAPIKey implements port.CredentialStore.
func (s *CredentialStore) GetAPIKey(ctx context.Context) (string, error) {
	apiKey, err := keyring.Get(s.service, s.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", errors.WithStack(port.ErrNotFound)
		}

		return "", errors.WithStack(err)
	}

	return apiKey, nil
}

// SetAPIKey implements port.CredentialStore.
func (s *CredentialStore) SetAPIKey(ctx context.Context, apiKey string) error {
	if err := keyring.Set(s.service, s.user, apiKey); err != nil {
		return errors.Wrap(err, "could not save api key to keyring")
	}

	return nil
}

// DeleteAPIKey implements port.CredentialStore.
func (s *CredentialStore) DeleteAPIKey(ctx context.Context) error {
	if err := keyring.Delete(s.service, s.user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return errors.Wrap(err, "could not delete api key from keyring")
	}

	return nil
}

// Location implements port.CredentialStore.
func (s *CredentialStore) Location() string {
	return fmt.Sprintf("keyring://%s/%s", s.service, s.user)
}

func NewCredentialStore(service string) *CredentialStore {
	if service == "" {
		service = DefaultService
	}

	return &CredentialStore{
		service: service,
		user:    defaultUser,
	}
}

var _ port.CredentialStore = &CredentialStore{}
