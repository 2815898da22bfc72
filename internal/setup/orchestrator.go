package setup

import (
	"context"
	"log/slog"
	"os"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/zerohost/internal/adapter/clipboard"
	"github.com/bornholm/zerohost/internal/adapter/qrcode"
	"github.com/bornholm/zerohost/internal/adapter/survey"
	"github.com/bornholm/zerohost/internal/adapter/update"
	"github.com/bornholm/zerohost/internal/build"
	"github.com/bornholm/zerohost/internal/config"
	"github.com/bornholm/zerohost/internal/core/service"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const defaultTerminalWidth = 80

var NewOrchestratorFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.Orchestrator, error) {
	client, err := getShareClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store, err := getCredentialStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	prompter := survey.NewPrompter()

	resolver := service.NewContentResolver(
		prompter,
		service.WithStdin(os.Stdin, func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		}),
		service.WithStdinGuard(conf.Stdin.Guard),
	)

	funcs := []service.OrchestratorOptionFunc{
		service.WithClipboard(clipboard.System{}),
		service.WithQRCodeRenderer(qrcode.HalfBlockRenderer{}),
		service.WithStdout(os.Stdout),
		service.WithTerminalWidth(terminalWidth()),
	}

	if conf.Update.Check {
		checker, err := update.NewGitHubChecker(conf.Update.Repository)
		if err != nil {
			slog.WarnContext(ctx, "could not create update checker", slogx.Error(err))
		} else {
			funcs = append(funcs,
				service.WithUpdateChecker(checker, build.ShortVersion),
				service.WithUpdateTimeout(conf.Update.Timeout),
			)
		}
	}

	orchestrator := service.NewOrchestrator(client, store, resolver, prompter, funcs...)

	return orchestrator, nil
})

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}

	return width
}
