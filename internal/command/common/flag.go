package common

import (
	"github.com/bornholm/zerohost/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	ParamDebug    = "debug"
	ParamLogLevel = "log-level"
	ParamSilent   = "silent"
	ParamDefaults = "defaults"
)

const metadataConfig = "config"

func SetConfig(ctx *cli.Context, conf *config.Config) {
	if ctx.App.Metadata == nil {
		ctx.App.Metadata = map[string]any{}
	}

	ctx.App.Metadata[metadataConfig] = conf
}

// GetConfig returns the configuration parsed when the application started,
// or parses it if none was attached.
func GetConfig(ctx *cli.Context) (*config.Config, error) {
	if conf, ok := ctx.App.Metadata[metadataConfig].(*config.Config); ok {
		return conf, nil
	}

	conf, err := config.Parse()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return conf, nil
}

func IsSilent(ctx *cli.Context) bool {
	return ctx.Bool(ParamSilent)
}
