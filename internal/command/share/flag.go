package share

import (
	"github.com/bornholm/zerohost/internal/command/common"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramFile        = "file"
	paramExpires     = "expires"
	paramPassword    = "password"
	paramBurn        = "burn"
	paramReference   = "reference"
	paramInteractive = "interactive"
	paramQRCode      = "qr"
	paramCopy        = "copy"
	paramAPIKey      = "api-key"
	paramConfig      = "config"
	paramLogin       = "login"
	paramLogout      = "logout"
	paramUsage       = "usage"
	paramList        = "list"
	paramDelete      = "delete"
	paramGet         = "get"
)

// withShareFlags returns a fresh set of flags on each call, flags keeping
// state once parsed.
func withShareFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:      paramFile,
			Aliases:   []string{"f"},
			Usage:     "Read content from file",
			TakesFile: true,
		},
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    paramExpires,
			Aliases: []string{"e"},
			Usage:   "Expiry time (1h, 24h, 1w, 7d), defaults to 24h",
		}),
		&cli.StringFlag{
			Name:    paramPassword,
			Aliases: []string{"p"},
			Usage:   "Password protect the share",
		},
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    paramBurn,
			Aliases: []string{"b"},
			Usage:   "Burn after reading (delete after first view)",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    paramReference,
			Aliases: []string{"r"},
			Usage:   "Reference label for tracking (max 8 chars)",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    paramInteractive,
			Aliases: []string{"i"},
			Usage:   "Interactive mode with prompts",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    paramQRCode,
			Aliases: []string{"q"},
			Usage:   "Show QR code for the share URL",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    paramCopy,
			Aliases: []string{"c"},
			Value:   true,
			Usage:   "Copy URL to clipboard (use --copy=false to disable)",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  common.ParamSilent,
			Usage: "Silent mode, only output the URL",
		}),
		&cli.StringFlag{
			Name:    paramAPIKey,
			EnvVars: []string{"ZEROHOST_API_KEY"},
			Usage:   "API key for premium features",
		},
		&cli.BoolFlag{
			Name:  paramConfig,
			Usage: "Show current configuration",
		},
		&cli.BoolFlag{
			Name:  paramLogin,
			Usage: "Authenticate with API key",
		},
		&cli.BoolFlag{
			Name:  paramLogout,
			Usage: "Remove stored authentication",
		},
		&cli.BoolFlag{
			Name:  paramUsage,
			Usage: "Show plan usage (requires API key)",
		},
		&cli.BoolFlag{
			Name:  paramList,
			Usage: "List active shares (requires API key)",
		},
		&cli.StringFlag{
			Name:  paramDelete,
			Usage: "Delete the share with the given id (requires API key)",
		},
		&cli.StringFlag{
			Name:  paramGet,
			Usage: "Print the content of the share with the given id, use --password if protected",
		},
		&cli.StringFlag{
			Name:      common.ParamDefaults,
			Usage:     "YAML file holding default values for the share flags",
			TakesFile: true,
		},
	}, flags...)
}
