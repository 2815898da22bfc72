package share

import (
	"github.com/bornholm/zerohost/internal/command/common"
	"github.com/bornholm/zerohost/internal/setup"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func Command() *cli.Command {
	flags := withShareFlags()
	return &cli.Command{
		Name:      "share",
		Usage:     "Share text, files or piped content and get a temporary URL",
		ArgsUsage: "[text]",
		Flags:     flags,
		Before:    altsrc.InitInputSourceWithContext(flags, common.NewDefaultsSourceFromFlagFunc(afero.NewOsFs(), common.ParamDefaults)),
		Action: func(ctx *cli.Context) error {
			action, err := actionFromFlags(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			conf, err := common.GetConfig(ctx)
			if err != nil {
				return errors.Wrap(err, "could not retrieve configuration")
			}

			orchestrator, err := setup.NewOrchestratorFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.Wrap(err, "could not initialize client")
			}

			if err := orchestrator.Run(ctx.Context, invocationFromFlags(ctx), action); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
