package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/pkg/errors"
)

// CreateShare implements port.ShareClient.
func (c *Client) CreateShare(ctx context.Context, req model.ShareRequest) (*model.Share, error) {
	var share model.Share

	if err := c.jsonRequest(ctx, http.MethodPost, "/v1/share", nil, req, &share); err != nil {
		return nil, errors.Wrap(err, "Failed to create share")
	}

	return &share, nil
}

// GetShare implements port.ShareClient.
func (c *Client) GetShare(ctx context.Context, id model.ShareID, password string) (*model.SharedContent, error) {
	header := http.Header{}
	if password != "" {
		header.Set(headerPassword, password)
	}

	endpoint, err := shareEndpoint(id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var content model.SharedContent

	if err := c.jsonRequest(ctx, http.MethodGet, endpoint, header, nil, &content); err != nil {
		return nil, errors.Wrap(err, "Failed to retrieve share")
	}

	return &content, nil
}

// DeleteShare implements port.ShareClient.
func (c *Client) DeleteShare(ctx context.Context, id model.ShareID) error {
	if !c.HasAPIKey() {
		return errors.WithStack(newAPIKeyRequiredError("API key required to delete shares"))
	}

	endpoint, err := shareEndpoint(id)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.request(ctx, http.MethodDelete, endpoint, nil, nil, nil); err != nil {
		return errors.Wrap(err, "Failed to delete share")
	}

	return nil
}

// TestConnection checks that the service accepts the current credentials by
// creating a minimal share.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.CreateShare(ctx, model.ShareRequest{
		Text:      "CLI connection test",
		ExpiresIn: "1h",
	})
	if err != nil {
		return errors.Wrap(err, "API connection test failed")
	}

	return nil
}

// shareEndpoint returns the escaped path of a share. The identifier always
// stays a single path segment.
func shareEndpoint(id model.ShareID) (string, error) {
	switch id {
	case "", ".", "..":
		return "", errors.Wrapf(ErrInvalidShareID, "'%s'", id)
	}

	return "/v1/share/" + url.PathEscape(string(id)), nil
}
