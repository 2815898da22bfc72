package memory

import (
	"net/url"

	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/bornholm/zerohost/internal/setup"
)

func init() {
	setup.CredentialStore.Register("memory", func(u *url.URL) (port.CredentialStore, error) {
		return NewCredentialStore(u.Query().Get("apiKey")), nil
	})
}
