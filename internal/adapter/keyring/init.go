package keyring

import (
	"net/url"

	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/bornholm/zerohost/internal/setup"
)

func init() {
	setup.CredentialStore.Register("keyring", func(u *url.URL) (port.CredentialStore, error) {
		return NewCredentialStore(u.Host), nil
	})
}
