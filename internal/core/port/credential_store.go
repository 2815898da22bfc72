package port

import "context"

// CredentialStore persists the API key used for authenticated requests.
type CredentialStore interface {
	// GetAPIKey returns the stored API key, or port.ErrNotFound
	GetAPIKey(ctx context.Context) (string, error)
	// SetAPIKey replaces the stored API key
	SetAPIKey(ctx context.Context, apiKey string) error
	// DeleteAPIKey removes the stored API key. Deleting a missing key is not an error.
	DeleteAPIKey(ctx context.Context) error
	// Location describes where the credential is stored, for display purposes
	Location() string
}
