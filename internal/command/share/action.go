package share

import (
	"strings"

	"github.com/bornholm/zerohost/internal/command/common"
	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/bornholm/zerohost/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var ErrUnexpectedArguments = errors.New("unexpected arguments after text")

type ArgumentsError struct {
	Leftovers []string
}

func (e *ArgumentsError) Error() string {
	return ErrUnexpectedArguments.Error() + ": " + strings.Join(e.Leftovers, " ") + ", place flags before the text"
}

func (e *ArgumentsError) Unwrap() error {
	return ErrUnexpectedArguments
}

// actionFromFlags selects the single action of the invocation. Administrative
// flags win over sharing, in a fixed order.
func actionFromFlags(ctx *cli.Context) (service.Action, error) {
	// Flags are not parsed after the first positional argument
	if ctx.NArg() > 1 {
		return nil, errors.WithStack(&ArgumentsError{Leftovers: ctx.Args().Tail()})
	}

	switch {
	case ctx.Bool(paramConfig):
		return service.ShowConfigAction{}, nil
	case ctx.Bool(paramLogin):
		return service.LoginAction{}, nil
	case ctx.Bool(paramLogout):
		return service.LogoutAction{}, nil
	case ctx.Bool(paramUsage):
		return service.UsageAction{}, nil
	case ctx.Bool(paramList):
		return service.ListSharesAction{}, nil
	case ctx.IsSet(paramDelete):
		return service.DeleteShareAction{ID: model.ShareID(ctx.String(paramDelete))}, nil
	case ctx.IsSet(paramGet):
		return service.GetShareAction{
			ID:       model.ShareID(ctx.String(paramGet)),
			Password: ctx.String(paramPassword),
		}, nil
	}

	return service.ShareAction{
		Options: service.ShareOptions{
			Text:        ctx.Args().First(),
			File:        ctx.String(paramFile),
			Expires:     ctx.String(paramExpires),
			Password:    ctx.String(paramPassword),
			Burn:        ctx.Bool(paramBurn),
			Reference:   ctx.String(paramReference),
			Interactive: ctx.Bool(paramInteractive),
			QRCode:      ctx.Bool(paramQRCode),
			Copy:        ctx.Bool(paramCopy),
		},
	}, nil
}

func invocationFromFlags(ctx *cli.Context) service.Invocation {
	return service.Invocation{
		APIKey: ctx.String(paramAPIKey),
		Silent: common.IsSilent(ctx),
	}
}
