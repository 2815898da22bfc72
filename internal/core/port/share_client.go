package port

import (
	"context"

	"github.com/bornholm/zerohost/internal/core/model"
)

type ShareClient interface {
	// SetAPIKey attaches the given API key to subsequent requests. An empty key detaches it.
	SetAPIKey(apiKey string)
	HasAPIKey() bool

	CreateShare(ctx context.Context, req model.ShareRequest) (*model.Share, error)
	GetShare(ctx context.Context, id model.ShareID, password string) (*model.SharedContent, error)
	DeleteShare(ctx context.Context, id model.ShareID) error

	GetUsage(ctx context.Context) (*model.Usage, error)
	GetActiveShares(ctx context.Context) ([]model.Share, error)

	// TestConnection verifies that the service accepts the attached credentials
	TestConnection(ctx context.Context) error
}
