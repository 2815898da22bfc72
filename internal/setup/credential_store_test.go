package setup_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/bornholm/zerohost/internal/setup"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"

	_ "github.com/bornholm/zerohost/internal/adapter/keyring"
	_ "github.com/bornholm/zerohost/internal/adapter/memory"
	_ "github.com/bornholm/zerohost/internal/adapter/settings"
)

func TestCredentialStoreRegistry(t *testing.T) {
	keyring.MockInit()

	dir := t.TempDir()

	type testCase struct {
		URI              string
		ExpectedLocation string
	}

	testCases := []testCase{
		{URI: "file://" + filepath.ToSlash(dir), ExpectedLocation: filepath.Join(dir, "config.json")},
		{URI: "file://" + filepath.ToSlash(dir) + "?filename=credentials.json", ExpectedLocation: filepath.Join(dir, "credentials.json")},
		{URI: "keyring://zerohost-test", ExpectedLocation: "keyring://zerohost-test/api-key"},
		{URI: "memory://", ExpectedLocation: "memory://"},
	}

	ctx := context.Background()

	for _, tc := range testCases {
		t.Run(tc.URI, func(t *testing.T) {
			store, err := setup.CredentialStore.From(tc.URI)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedLocation, store.Location(); e != g {
				t.Errorf("store.Location(): expected %q, got %q", e, g)
			}

			if _, err := store.GetAPIKey(ctx); !errors.Is(err, port.ErrNotFound) {
				t.Fatalf("expected port.ErrNotFound, got %v", err)
			}

			if err := store.SetAPIKey(ctx, "zh_key"); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			apiKey, err := store.GetAPIKey(ctx)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := "zh_key", apiKey; e != g {
				t.Errorf("apiKey: expected %q, got %q", e, g)
			}

			if err := store.DeleteAPIKey(ctx); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if _, err := store.GetAPIKey(ctx); !errors.Is(err, port.ErrNotFound) {
				t.Errorf("expected port.ErrNotFound after delete, got %v", err)
			}
		})
	}
}
