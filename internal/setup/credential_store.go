package setup

import (
	"context"
	"net/url"
	"strings"

	"github.com/bornholm/zerohost/internal/config"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
)

var CredentialStore = NewRegistry[port.CredentialStore]()

var getCredentialStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.CredentialStore, error) {
	u, err := CredentialStoreURL(conf.Store)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store, err := CredentialStore.FromURL(u)
	if err != nil {
		return nil, errors.Wrapf(err, "could not retrieve credential store for uri '%s'", conf.Store.URI)
	}

	return store, nil
})

// CredentialStoreURL normalizes the configured store URI. A bare scheme is
// accepted and the configuration directory override fills an empty file path.
func CredentialStoreURL(conf config.Store) (*url.URL, error) {
	rawURL := conf.URI
	if !strings.Contains(rawURL, "://") {
		rawURL += "://"
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse credential store uri '%s'", conf.URI)
	}

	if u.Scheme == "file" && u.Host == "" && u.Path == "" && conf.ConfigDir != "" {
		u.Path = conf.ConfigDir
	}

	return u, nil
}
