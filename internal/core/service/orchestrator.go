package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/bornholm/zerohost/internal/ui"
	"github.com/pkg/errors"
)

// Orchestrator drives a single invocation of the client, from the action
// dispatch to the presentation of the result.
type Orchestrator struct {
	client    port.ShareClient
	store     port.CredentialStore
	resolver  *ContentResolver
	prompter  port.Prompter
	clipboard port.Clipboard
	qrcode    port.QRCodeRenderer
	stdout    io.Writer
	now       func() time.Time
	width     int

	updates       port.UpdateChecker
	version       string
	updateTimeout time.Duration
}

func (o *Orchestrator) Run(ctx context.Context, inv Invocation, action Action) error {
	ctx = slogx.WithAttrs(ctx, slog.String("action", action.Name()))

	slog.DebugContext(ctx, "running action")

	switch action.(type) {
	case ShowConfigAction:
		return o.showConfig(ctx)
	case LoginAction:
		return o.login(ctx)
	case LogoutAction:
		return o.logout(ctx)
	}

	if err := o.attachCredential(ctx, inv); err != nil {
		return errors.WithStack(err)
	}

	switch a := action.(type) {
	case ShareAction:
		return o.share(ctx, inv, a.Options)
	case UsageAction:
		return o.showUsage(ctx)
	case ListSharesAction:
		return o.listShares(ctx)
	case DeleteShareAction:
		return o.deleteShare(ctx, a.ID)
	case GetShareAction:
		return o.getShare(ctx, a.ID, a.Password)
	default:
		return errors.Errorf("unsupported action '%s'", action.Name())
	}
}

func (o *Orchestrator) attachCredential(ctx context.Context, inv Invocation) error {
	if inv.APIKey != "" {
		slog.DebugContext(ctx, "using api key from flag")
		o.client.SetAPIKey(inv.APIKey)
		return nil
	}

	apiKey, err := o.store.GetAPIKey(ctx)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			slog.DebugContext(ctx, "no stored api key, using anonymous access")
			return nil
		}

		return errors.Wrap(err, "could not read stored credentials")
	}

	slog.DebugContext(ctx, "using stored api key", slog.String("location", o.store.Location()))

	o.client.SetAPIKey(apiKey)

	return nil
}

func (o *Orchestrator) share(ctx context.Context, inv Invocation, opts ShareOptions) error {
	content, err := o.resolver.Resolve(ctx, ContentRequest{
		Text:        opts.Text,
		File:        opts.File,
		Interactive: opts.Interactive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if IsBlank(content) {
		return errors.WithStack(ErrEmptyContent)
	}

	if opts.Interactive {
		opts, err = o.enrich(ctx, opts)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	if opts.Expires == "" {
		opts.Expires = model.DefaultExpiry
	}

	if !model.ValidateExpiry(opts.Expires) {
		return errors.WithStack(ErrInvalidExpiry)
	}

	if err := model.ValidateReference(opts.Reference); err != nil {
		return errors.WithStack(err)
	}

	req := model.ShareRequest{
		Text:             content,
		ExpiresIn:        opts.Expires,
		Password:         opts.Password,
		BurnAfterReading: opts.Burn,
		Reference:        opts.Reference,
	}

	slog.InfoContext(ctx, "creating share",
		slog.String("expires_in", req.ExpiresIn),
		slog.Bool("burn_after_reading", req.BurnAfterReading),
		slog.Bool("password", req.Password != ""),
	)

	share, err := o.client.CreateShare(ctx, req)
	if err != nil {
		return errors.WithStack(err)
	}

	slog.InfoContext(ctx, "share created", slog.String("share_id", string(share.ID)))

	if err := o.present(ctx, inv, opts, share); err != nil {
		return errors.WithStack(err)
	}

	if !inv.Silent {
		o.notifyUpdate(ctx)
	}

	return nil
}

// notifyUpdate prints a notice when a newer release is published. Lookup
// failures are only logged.
func (o *Orchestrator) notifyUpdate(ctx context.Context) {
	if o.updates == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, o.updateTimeout)
	defer cancel()

	release, err := o.updates.LatestRelease(ctx, o.version)
	if err != nil {
		slog.DebugContext(ctx, "could not check for updates", slogx.Error(err))
		return
	}

	if release == nil {
		return
	}

	o.println(ui.UpdateNotice(o.version, release))
}

func (o *Orchestrator) present(ctx context.Context, inv Invocation, opts ShareOptions, share *model.Share) error {
	if inv.Silent {
		if _, err := fmt.Fprintln(o.stdout, share.URL); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	o.println(ui.ShareSummary(share, o.now()))

	if opts.Copy {
		if err := o.clipboard.WriteText(share.URL); err != nil {
			slog.DebugContext(ctx, "could not copy url to clipboard", slogx.Error(err))
			o.println(ui.Note("Failed to copy to clipboard"))
		} else {
			o.println(ui.Note("📋 URL copied to clipboard"))
		}
	}

	if opts.QRCode {
		if o.qrcode == nil {
			return errors.WithStack(errQRCodeUnavailable)
		}

		o.println("\n" + ui.Note("QR Code:"))

		if err := o.qrcode.Render(o.stdout, share.URL); err != nil {
			return errors.Wrap(err, "could not render qr code")
		}
	}

	return nil
}

func (o *Orchestrator) println(lines ...string) {
	if _, err := fmt.Fprintln(o.stdout, strings.Join(lines, "\n")); err != nil {
		slog.Error("could not write output", slogx.Error(errors.WithStack(err)))
	}
}

type OrchestratorOptions struct {
	Clipboard     port.Clipboard
	QRCode        port.QRCodeRenderer
	Stdout        io.Writer
	Now           func() time.Time
	TerminalWidth int
	UpdateChecker port.UpdateChecker
	Version       string
	UpdateTimeout time.Duration
}

type OrchestratorOptionFunc func(opts *OrchestratorOptions)

func WithClipboard(clipboard port.Clipboard) OrchestratorOptionFunc {
	return func(opts *OrchestratorOptions) {
		opts.Clipboard = clipboard
	}
}

func WithQRCodeRenderer(renderer port.QRCodeRenderer) OrchestratorOptionFunc {
	return func(opts *OrchestratorOptions) {
		opts.QRCode = renderer
	}
}

func WithStdout(stdout io.Writer) OrchestratorOptionFunc {
	return func(opts *OrchestratorOptions) {
		opts.Stdout = stdout
	}
}

func WithNow(now func() time.Time) OrchestratorOptionFunc {
	return func(opts *OrchestratorOptions) {
		opts.Now = now
	}
}

func WithTerminalWidth(width int) OrchestratorOptionFunc {
	return func(opts *OrchestratorOptions) {
		opts.TerminalWidth = width
	}
}

// WithUpdateChecker enables the new release notice after a share is
// presented. version is the version of the running client.
func WithUpdateChecker(checker port.UpdateChecker, version string) OrchestratorOptionFunc {
	return func(opts *OrchestratorOptions) {
		opts.UpdateChecker = checker
		opts.Version = version
	}
}

func WithUpdateTimeout(timeout time.Duration) OrchestratorOptionFunc {
	return func(opts *OrchestratorOptions) {
		opts.UpdateTimeout = timeout
	}
}

func NewOrchestratorOptions(funcs ...OrchestratorOptionFunc) *OrchestratorOptions {
	opts := &OrchestratorOptions{
		Clipboard:     noopClipboard{},
		Stdout:        os.Stdout,
		Now:           time.Now,
		TerminalWidth: 80,
		UpdateTimeout: DefaultUpdateTimeout,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func NewOrchestrator(client port.ShareClient, store port.CredentialStore, resolver *ContentResolver, prompter port.Prompter, funcs ...OrchestratorOptionFunc) *Orchestrator {
	opts := NewOrchestratorOptions(funcs...)
	return &Orchestrator{
		client:    client,
		store:     store,
		resolver:  resolver,
		prompter:  prompter,
		clipboard: opts.Clipboard,
		qrcode:    opts.QRCode,
		stdout:    opts.Stdout,
		now:       opts.Now,
		width:     opts.TerminalWidth,

		updates:       opts.UpdateChecker,
		version:       opts.Version,
		updateTimeout: opts.UpdateTimeout,
	}
}

const DefaultUpdateTimeout = 2 * time.Second

var (
	errClipboardUnavailable = errors.New("clipboard unavailable")
	errQRCodeUnavailable    = errors.New("QR code rendering is unavailable")
)

type noopClipboard struct{}

func (noopClipboard) WriteText(text string) error {
	return errClipboardUnavailable
}
