package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

func (c *Client) request(ctx context.Context, method string, path string, header http.Header, body io.Reader, result io.Writer) error {
	endpoint, err := url.Parse(path)
	if err != nil {
		return errors.WithStack(err)
	}

	// Paths are concatenated, not joined, so escaped segments are neither
	// decoded nor cleaned
	u := *c.baseURL
	u.Path = strings.TrimSuffix(c.baseURL.Path, "/") + endpoint.Path
	u.RawPath = strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + endpoint.EscapedPath()
	u.RawQuery = endpoint.RawQuery
	u.Fragment = ""

	slog.DebugContext(ctx, "new client request",
		slog.String("method", method),
		slog.String("path", u.EscapedPath()),
		slog.String("host", u.Host),
		slog.Bool("authenticated", c.HasAPIKey()),
	)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	req.Header.Set("User-Agent", c.userAgent)

	if apiKey := c.getAPIKey(); apiKey != "" {
		req.Header.Set(headerAPIKey, apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(newNetworkError(err))
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		return errors.WithStack(newStatusError(res))
	}

	if result == nil {
		return nil
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(newNetworkError(err))
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, header http.Header, payload any, result any) error {
	if header == nil {
		header = http.Header{}
	}

	header.Set("Accept", "application/json")

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}

		header.Set("Content-Type", "application/json")
		body = bytes.NewReader(data)
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, header, body, &buff); err != nil {
		return errors.WithStack(err)
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.Wrap(err, "could not decode server response")
	}

	return nil
}
