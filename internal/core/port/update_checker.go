package port

import (
	"context"

	"github.com/bornholm/zerohost/internal/core/model"
)

type UpdateChecker interface {
	// LatestRelease returns the latest release newer than current, or nil
	// when current is up to date or is not a released version.
	LatestRelease(ctx context.Context, current string) (*model.Release, error)
}
