package service

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

type testHarness struct {
	orchestrator *Orchestrator
	client       *dummyShareClient
	store        *dummyCredentialStore
	prompter     *scriptedPrompter
	clipboard    *dummyClipboard
	qrcode       *dummyQRCodeRenderer
	stdout       *bytes.Buffer
}

func newTestHarness(t *testing.T, funcs ...ContentResolverOptionFunc) *testHarness {
	h := &testHarness{
		client: &dummyShareClient{
			share: &model.Share{
				ID:        "abc123",
				URL:       "https://zerohost.net/abc123",
				ExpiresAt: testNow.Add(24 * time.Hour).Format(time.RFC3339),
			},
		},
		store:     &dummyCredentialStore{},
		prompter:  &scriptedPrompter{answers: map[string][]any{}},
		clipboard: &dummyClipboard{},
		qrcode:    &dummyQRCodeRenderer{},
		stdout:    &bytes.Buffer{},
	}

	funcs = append([]ContentResolverOptionFunc{
		WithFs(afero.NewMemMapFs()),
		WithStdin(nil, func() bool { return true }),
	}, funcs...)

	resolver := NewContentResolver(h.prompter, funcs...)

	h.orchestrator = NewOrchestrator(
		h.client, h.store, resolver, h.prompter,
		WithClipboard(h.clipboard),
		WithQRCodeRenderer(h.qrcode),
		WithStdout(h.stdout),
		WithNow(func() time.Time { return testNow }),
	)

	return h
}

func TestShareDefaults(t *testing.T) {
	h := newTestHarness(t)

	err := h.orchestrator.Run(context.Background(), Invocation{Silent: true}, ShareAction{
		Options: ShareOptions{Text: "Hello, world!", Copy: true},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, h.client.calls; e != g {
		t.Fatalf("client.calls: expected %d, got %d", e, g)
	}

	expected := model.ShareRequest{
		Text:             "Hello, world!",
		ExpiresIn:        "24h",
		BurnAfterReading: false,
	}

	if e, g := expected, h.client.requests[0]; e != g {
		t.Errorf("request: expected %+v, got %+v", e, g)
	}

	if e, g := "https://zerohost.net/abc123\n", h.stdout.String(); e != g {
		t.Errorf("stdout: expected %q, got %q", e, g)
	}

	if e, g := "", h.clipboard.text; e != g {
		t.Errorf("clipboard: silent mode should not copy, got %q", g)
	}
}

func TestShareSummary(t *testing.T) {
	h := newTestHarness(t)
	h.client.share.BurnAfterReading = true

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "Hello, world!", Copy: true, QRCode: true, Burn: true},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	output := h.stdout.String()

	t.Logf("\n%s", output)

	for _, e := range []string{"Share URL: https://zerohost.net/abc123", "Expires: 1 day", "Share ID: abc123", "Burn after reading", "URL copied to clipboard", "QR Code:", "[QR]"} {
		if !strings.Contains(output, e) {
			t.Errorf("output should contain %q", e)
		}
	}

	if e, g := "https://zerohost.net/abc123", h.clipboard.text; e != g {
		t.Errorf("clipboard: expected %q, got %q", e, g)
	}

	if e, g := "https://zerohost.net/abc123", h.qrcode.content; e != g {
		t.Errorf("qrcode: expected %q, got %q", e, g)
	}

	if !h.client.requests[0].BurnAfterReading {
		t.Errorf("request.BurnAfterReading: expected true")
	}
}

func TestShareClipboardFailureIsNotFatal(t *testing.T) {
	h := newTestHarness(t)
	h.clipboard.err = errors.New("no display")

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "Hello", Copy: true},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(h.stdout.String(), "Failed to copy to clipboard") {
		t.Errorf("output should mention the clipboard failure")
	}
}

func TestShareCopyDisabled(t *testing.T) {
	h := newTestHarness(t)

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "Hello", Copy: false},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "", h.clipboard.text; e != g {
		t.Errorf("clipboard: expected nothing copied, got %q", g)
	}
}

func TestShareInvalidExpiry(t *testing.T) {
	h := newTestHarness(t)

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "Hello", Expires: "invalid"},
	})
	if !errors.Is(err, ErrInvalidExpiry) {
		t.Fatalf("expected ErrInvalidExpiry, got %v", err)
	}

	if !strings.Contains(err.Error(), "Invalid expiry time") {
		t.Errorf("error message should contain 'Invalid expiry time', got %q", err.Error())
	}

	if e, g := 0, h.client.calls; e != g {
		t.Errorf("client.calls: expected %d, got %d", e, g)
	}
}

func TestShareInvalidReference(t *testing.T) {
	h := newTestHarness(t)

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "Hello", Reference: "way-too-long"},
	})
	if !errors.Is(err, model.ErrReferenceTooLong) {
		t.Fatalf("expected model.ErrReferenceTooLong, got %v", err)
	}

	if e, g := 0, h.client.calls; e != g {
		t.Errorf("client.calls: expected %d, got %d", e, g)
	}
}

func TestShareBlankContent(t *testing.T) {
	h := newTestHarness(t)

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "  \n\t "},
	})
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}

	if e, g := 0, h.client.calls; e != g {
		t.Errorf("client.calls: expected %d, got %d", e, g)
	}
}

func TestShareNoContent(t *testing.T) {
	h := newTestHarness(t)

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{})
	if !errors.Is(err, ErrNoContentProvided) {
		t.Fatalf("expected ErrNoContentProvided, got %v", err)
	}
}

func TestShareRemoteError(t *testing.T) {
	h := newTestHarness(t)
	h.client.err = errors.New("Rate limit exceeded - please wait before trying again")

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "Hello"},
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	if e, g := 1, h.client.calls; e != g {
		t.Errorf("client.calls: expected %d, got %d (no retry expected)", e, g)
	}

	if e, g := "", h.stdout.String(); e != g {
		t.Errorf("stdout: expected no output, got %q", g)
	}
}

func TestCredentialAttach(t *testing.T) {
	ctx := context.Background()

	t.Run("stored key", func(t *testing.T) {
		h := newTestHarness(t)

		if err := h.store.SetAPIKey(ctx, "stored-key"); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if err := h.orchestrator.Run(ctx, Invocation{Silent: true}, ShareAction{Options: ShareOptions{Text: "Hello"}}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "stored-key", h.client.apiKey; e != g {
			t.Errorf("client.apiKey: expected %q, got %q", e, g)
		}
	})

	t.Run("flag overrides stored key", func(t *testing.T) {
		h := newTestHarness(t)

		if err := h.store.SetAPIKey(ctx, "stored-key"); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if err := h.orchestrator.Run(ctx, Invocation{Silent: true, APIKey: "flag-key"}, ShareAction{Options: ShareOptions{Text: "Hello"}}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "flag-key", h.client.apiKey; e != g {
			t.Errorf("client.apiKey: expected %q, got %q", e, g)
		}

		stored, err := h.store.GetAPIKey(ctx)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "stored-key", stored; e != g {
			t.Errorf("stored key should be left untouched: expected %q, got %q", e, g)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		h := newTestHarness(t)

		if err := h.orchestrator.Run(ctx, Invocation{Silent: true}, ShareAction{Options: ShareOptions{Text: "Hello"}}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "", h.client.apiKey; e != g {
			t.Errorf("client.apiKey: expected %q, got %q", e, g)
		}
	})
}

func TestInteractiveEnrichment(t *testing.T) {
	h := newTestHarness(t)

	h.prompter.answers = map[string][]any{
		"expires":      {"custom"},
		"customExpiry": {"9d", "3d"},
		"password":     {""},
		"burn":         {true},
		"reference":    {"way-too-long", "inv-42"},
		"qr":           {true},
		"copy":         {false},
	}

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "Hello", Interactive: true, Copy: true},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expectedOrder := []string{"expires", "password", "burn", "reference", "qr", "copy", "customExpiry"}
	if e, g := expectedOrder, h.prompter.askedNames(); !slices.Equal(e, g) {
		t.Errorf("asked questions: expected %v, got %v", e, g)
	}

	expected := model.ShareRequest{
		Text:             "Hello",
		ExpiresIn:        "3d",
		BurnAfterReading: true,
		Reference:        "inv-42",
	}

	if e, g := expected, h.client.requests[0]; e != g {
		t.Errorf("request: expected %+v, got %+v", e, g)
	}

	if e, g := "", h.clipboard.text; e != g {
		t.Errorf("clipboard: copy was declined, got %q", g)
	}

	if e, g := "https://zerohost.net/abc123", h.qrcode.content; e != g {
		t.Errorf("qrcode: expected %q, got %q", e, g)
	}
}

func TestInteractiveSkipsFlagValues(t *testing.T) {
	h := newTestHarness(t)

	h.prompter.answers = map[string][]any{
		"qr":   {false},
		"copy": {true},
	}

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{
			Text:        "Hello",
			Interactive: true,
			Expires:     "1w",
			Password:    "hunter2",
			Burn:        true,
			Reference:   "ref",
		},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := []string{"qr", "copy"}, h.prompter.askedNames(); !slices.Equal(e, g) {
		t.Errorf("asked questions: expected %v, got %v", e, g)
	}

	expected := model.ShareRequest{
		Text:             "Hello",
		ExpiresIn:        "1w",
		Password:         "hunter2",
		BurnAfterReading: true,
		Reference:        "ref",
	}

	if e, g := expected, h.client.requests[0]; e != g {
		t.Errorf("request: expected %+v, got %+v", e, g)
	}
}

func TestInteractiveInterrupted(t *testing.T) {
	h := newTestHarness(t)

	interrupted := &interruptingPrompter{}
	h.orchestrator.prompter = interrupted

	err := h.orchestrator.Run(context.Background(), Invocation{}, ShareAction{
		Options: ShareOptions{Text: "Hello", Interactive: true},
	})
	if !errors.Is(err, port.ErrInterrupted) {
		t.Fatalf("expected port.ErrInterrupted, got %v", err)
	}

	if e, g := 0, h.client.calls; e != g {
		t.Errorf("client.calls: expected %d, got %d", e, g)
	}
}

type interruptingPrompter struct{}

func (interruptingPrompter) Ask(ctx context.Context, questions ...port.Question) (port.Answers, error) {
	return nil, errors.WithStack(port.ErrInterrupted)
}

func TestShowConfig(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	if err := h.store.SetAPIKey(ctx, "zh_1234567890"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := h.orchestrator.Run(ctx, Invocation{}, ShowConfigAction{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	output := h.stdout.String()

	for _, e := range []string{"Config file: dummy://", "Authenticated: Yes", "API Key: zh_12345..."} {
		if !strings.Contains(output, e) {
			t.Errorf("output should contain %q, got %q", e, output)
		}
	}

	if strings.Contains(output, "zh_1234567890") {
		t.Errorf("output should not contain the full api key")
	}

	if e, g := 0, h.client.calls; e != g {
		t.Errorf("client.calls: expected %d, got %d", e, g)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := newTestHarness(t)
		h.prompter.answers["apiKey"] = []any{"   ", " zh_new_key "}

		if err := h.orchestrator.Run(ctx, Invocation{}, LoginAction{}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		stored, err := h.store.GetAPIKey(ctx)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "zh_new_key", stored; e != g {
			t.Errorf("stored key: expected %q, got %q", e, g)
		}

		if e, g := 1, h.client.calls; e != g {
			t.Errorf("client.calls: expected %d, got %d", e, g)
		}
	})

	t.Run("rejected key", func(t *testing.T) {
		h := newTestHarness(t)
		h.prompter.answers["apiKey"] = []any{"zh_bad_key"}
		h.client.err = errors.New("Authentication failed - check your API key")

		if err := h.orchestrator.Run(ctx, Invocation{}, LoginAction{}); !errors.Is(err, ErrLoginFailed) {
			t.Fatalf("expected ErrLoginFailed, got %v", err)
		}

		if _, err := h.store.GetAPIKey(ctx); !errors.Is(err, port.ErrNotFound) {
			t.Errorf("rejected key should not be stored, got %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	if err := h.store.SetAPIKey(ctx, "zh_key"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := h.orchestrator.Run(ctx, Invocation{}, LogoutAction{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := h.store.GetAPIKey(ctx); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound after logout, got %v", err)
	}

	if !strings.Contains(h.stdout.String(), "Logged out successfully") {
		t.Errorf("output should confirm the logout")
	}
}

func TestAccountActions(t *testing.T) {
	ctx := context.Background()

	h := newTestHarness(t)
	h.client.usage = &model.Usage{Current: 3, Limit: 1000, Plan: "pro"}
	h.client.shares = []model.Share{{ID: "a", URL: "https://zerohost.net/a"}}
	h.client.shared = &model.SharedContent{ID: "a", Text: "secret text"}

	inv := Invocation{APIKey: "zh_key"}

	if err := h.orchestrator.Run(ctx, inv, UsageAction{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := h.orchestrator.Run(ctx, inv, ListSharesAction{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := h.orchestrator.Run(ctx, inv, DeleteShareAction{ID: "a"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := h.orchestrator.Run(ctx, inv, GetShareAction{ID: "a", Password: "hunter2"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	output := h.stdout.String()

	for _, e := range []string{"Usage: 3/1,000", "Plan: pro", "https://zerohost.net/a", "Share a deleted", "secret text\n"} {
		if !strings.Contains(output, e) {
			t.Errorf("output should contain %q, got %q", e, output)
		}
	}

	if e, g := []model.ShareID{"a"}, h.client.deleted; !slices.Equal(e, g) {
		t.Errorf("deleted: expected %v, got %v", e, g)
	}

	if e, g := "hunter2", h.client.password; e != g {
		t.Errorf("password: expected %q, got %q", e, g)
	}

	if err := h.orchestrator.Run(ctx, inv, DeleteShareAction{}); !errors.Is(err, ErrMissingShareID) {
		t.Errorf("expected ErrMissingShareID, got %v", err)
	}
}
