package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/zerohost/internal/build"
	"github.com/bornholm/zerohost/internal/command/common"
	"github.com/bornholm/zerohost/internal/config"
	"github.com/bornholm/zerohost/internal/ui"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Main runs the given command as the application root: its flags, its
// arguments usage and its action are mounted at the top level.
func Main(name string, usage string, root *cli.Command) {
	app := &cli.App{
		Name:      name,
		Usage:     usage,
		ArgsUsage: root.ArgsUsage,
		Version:   build.LongVersion,
		Before: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse configuration")
			}

			common.SetConfig(ctx, conf)

			slogLevel := conf.Logger.Level

			switch ctx.String(common.ParamLogLevel) {
			case "debug":
				slogLevel = slog.LevelDebug
			case "info":
				slogLevel = slog.LevelInfo
			case "warn":
				slogLevel = slog.LevelWarn
			case "error":
				slogLevel = slog.LevelError
			}

			if ctx.Bool(common.ParamDebug) {
				slogLevel = slog.LevelDebug
			}

			logger := slog.New(slogx.ContextHandler{
				Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level:     slogLevel,
					AddSource: true,
				}),
			})

			slog.SetDefault(logger)

			if root.Before != nil {
				return root.Before(ctx)
			}

			return nil
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    common.ParamDebug,
				Value:   false,
				EnvVars: []string{"ZEROHOST_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:  common.ParamLogLevel,
				Usage: "Set logging level (debug, info, warn, error)",
			},
		}, root.Flags...),
		Action: root.Action,
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		slog.DebugContext(ctx.Context, "command failed", slogx.Error(err))

		if common.IsSilent(ctx) {
			return
		}

		message := err.Error()
		if ctx.Bool(common.ParamDebug) {
			message = fmt.Sprintf("%+v", err)
		}

		fmt.Fprintln(os.Stderr, ui.Failure(message))
	}

	sort.Sort(cli.FlagsByName(app.Flags))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
