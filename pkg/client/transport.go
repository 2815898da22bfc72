package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/xid"
)

const headerRequestID = "X-Request-ID"

// RequestIDTransport tags each outgoing request with a unique identifier and
// logs its outcome. It never retries.
type RequestIDTransport struct {
	Base http.RoundTripper
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	requestID := req.Header.Get(headerRequestID)
	if requestID == "" {
		requestID = xid.New().String()
		req = req.Clone(req.Context())
		req.Header.Set(headerRequestID, requestID)
	}

	ctx := req.Context()
	start := time.Now()

	res, err := transport.RoundTrip(req)
	if err != nil {
		slog.DebugContext(ctx, "request failed", slog.String("request_id", requestID), slog.Duration("duration", time.Since(start)), slog.Any("error", err))
		return nil, err
	}

	slog.DebugContext(ctx, "request done", slog.String("request_id", requestID), slog.Int("status", res.StatusCode), slog.Duration("duration", time.Since(start)))

	return res, nil
}
