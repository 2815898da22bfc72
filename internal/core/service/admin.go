package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/bornholm/zerohost/internal/ui"
	"github.com/pkg/errors"
)

const maskedKeyLength = 8

func (o *Orchestrator) showConfig(ctx context.Context) error {
	apiKey, err := o.store.GetAPIKey(ctx)
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		return errors.Wrap(err, "could not read stored credentials")
	}

	authenticated := apiKey != ""

	lines := []string{
		ui.Title("ZeroHost CLI Configuration"),
		"",
		ui.Field("Config file", o.store.Location()),
		ui.Field("Authenticated", ui.YesNo(authenticated)),
	}

	if authenticated {
		lines = append(lines, ui.Field("API Key", model.MaskSecret(apiKey, maskedKeyLength)))
	}

	lines = append(lines,
		"",
		ui.Note("Available commands:"),
		"  zerohost --login     Authenticate with API key",
		"  zerohost --logout    Remove stored authentication",
		"  zerohost --usage     Show plan usage",
		"  zerohost --list      List active shares",
		"  zerohost --help      Show all available options",
	)

	o.println(lines...)

	return nil
}

func (o *Orchestrator) login(ctx context.Context) error {
	o.println(ui.Title("🔑 ZeroHost CLI Authentication"), "")

	answers, err := o.prompter.Ask(ctx, port.Question{
		Name:     "apiKey",
		Kind:     port.QuestionPassword,
		Message:  "Enter your API key:",
		Validate: port.NotBlank("API key cannot be empty"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	apiKey := strings.TrimSpace(answers.String("apiKey"))

	o.client.SetAPIKey(apiKey)

	if err := o.client.TestConnection(ctx); err != nil {
		slog.DebugContext(ctx, "api key validation failed", slogx.Error(err))
		return errors.WithStack(ErrLoginFailed)
	}

	if err := o.store.SetAPIKey(ctx, apiKey); err != nil {
		return errors.Wrap(err, "could not save api key")
	}

	o.println("", ui.Success("API key saved. You can now use premium features."))

	return nil
}

func (o *Orchestrator) logout(ctx context.Context) error {
	if err := o.store.DeleteAPIKey(ctx); err != nil {
		return errors.Wrap(err, "could not remove stored api key")
	}

	o.println(ui.Success("Logged out successfully"))

	return nil
}

func (o *Orchestrator) showUsage(ctx context.Context) error {
	usage, err := o.client.GetUsage(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	lines := []string{
		ui.Field("Usage", ui.FormatUsage(usage)),
	}

	if usage.Plan != "" {
		lines = append(lines, ui.Field("Plan", usage.Plan))
	}

	o.println(lines...)

	return nil
}

func (o *Orchestrator) listShares(ctx context.Context) error {
	shares, err := o.client.GetActiveShares(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	o.println(ui.ShareList(shares, o.now(), o.width))

	return nil
}

func (o *Orchestrator) deleteShare(ctx context.Context, id model.ShareID) error {
	if id == "" {
		return errors.WithStack(ErrMissingShareID)
	}

	if err := o.client.DeleteShare(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	o.println(ui.Success(fmt.Sprintf("Share %s deleted", id)))

	return nil
}

func (o *Orchestrator) getShare(ctx context.Context, id model.ShareID, password string) error {
	if id == "" {
		return errors.WithStack(ErrMissingShareID)
	}

	content, err := o.client.GetShare(ctx, id, password)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprint(o.stdout, content.Text); err != nil {
		return errors.WithStack(err)
	}

	if content.Text != "" && !strings.HasSuffix(content.Text, "\n") {
		o.println()
	}

	return nil
}
