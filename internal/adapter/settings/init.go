package settings

import (
	"net/url"
	"path/filepath"

	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/bornholm/zerohost/internal/setup"
)

func init() {
	setup.CredentialStore.Register("file", func(u *url.URL) (port.CredentialStore, error) {
		funcs := make([]OptionFunc, 0, 2)

		if dir := filepath.FromSlash(u.Host + u.Path); dir != "" {
			funcs = append(funcs, WithDir(dir))
		}

		if filename := u.Query().Get("filename"); filename != "" {
			funcs = append(funcs, WithFilename(filename))
		}

		return NewCredentialStore(funcs...), nil
	})
}
