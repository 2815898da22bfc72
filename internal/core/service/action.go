package service

import "github.com/bornholm/zerohost/internal/core/model"

// Action is the unit of work requested by a single invocation. Administrative
// actions never go through the share creation flow.
type Action interface {
	Name() string
}

// Invocation holds the settings shared by every action.
type Invocation struct {
	// APIKey overrides the stored credential for this invocation only
	APIKey string
	// Silent reduces the output to the bare minimum
	Silent bool
}

type ShareOptions struct {
	Text        string
	File        string
	Expires     string
	Password    string
	Burn        bool
	Reference   string
	Interactive bool
	QRCode      bool
	Copy        bool
}

type ShareAction struct {
	Options ShareOptions
}

func (ShareAction) Name() string { return "share" }

type ShowConfigAction struct{}

func (ShowConfigAction) Name() string { return "show-config" }

type LoginAction struct{}

func (LoginAction) Name() string { return "login" }

type LogoutAction struct{}

func (LogoutAction) Name() string { return "logout" }

type UsageAction struct{}

func (UsageAction) Name() string { return "usage" }

type ListSharesAction struct{}

func (ListSharesAction) Name() string { return "list-shares" }

type DeleteShareAction struct {
	ID model.ShareID
}

func (DeleteShareAction) Name() string { return "delete-share" }

type GetShareAction struct {
	ID       model.ShareID
	Password string
}

func (GetShareAction) Name() string { return "get-share" }

var (
	_ Action = ShareAction{}
	_ Action = ShowConfigAction{}
	_ Action = LoginAction{}
	_ Action = LogoutAction{}
	_ Action = UsageAction{}
	_ Action = ListSharesAction{}
	_ Action = DeleteShareAction{}
	_ Action = GetShareAction{}
)
