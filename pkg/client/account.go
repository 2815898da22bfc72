package client

import (
	"context"
	"net/http"

	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/pkg/errors"
)

// GetUsage implements port.ShareClient.
func (c *Client) GetUsage(ctx context.Context) (*model.Usage, error) {
	if !c.HasAPIKey() {
		return nil, errors.WithStack(newAPIKeyRequiredError("API key required for usage information"))
	}

	var usage model.Usage

	if err := c.jsonRequest(ctx, http.MethodGet, "/v1/usage", nil, nil, &usage); err != nil {
		return nil, errors.Wrap(err, "Failed to get usage")
	}

	return &usage, nil
}

type activeSharesResponse struct {
	Shares []model.Share `json:"shares"`
}

// GetActiveShares implements port.ShareClient.
func (c *Client) GetActiveShares(ctx context.Context) ([]model.Share, error) {
	if !c.HasAPIKey() {
		return nil, errors.WithStack(newAPIKeyRequiredError("API key required for active shares"))
	}

	var res activeSharesResponse

	if err := c.jsonRequest(ctx, http.MethodGet, "/v1/shares", nil, nil, &res); err != nil {
		return nil, errors.Wrap(err, "Failed to get active shares")
	}

	if res.Shares == nil {
		return []model.Share{}, nil
	}

	return res.Shares, nil
}
