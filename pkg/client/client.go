package client

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/bornholm/zerohost/internal/core/port"
)

const (
	headerAPIKey   = "X-API-Key"
	headerPassword = "X-Password"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string

	apiKey string
	mutex  sync.RWMutex
}

// SetAPIKey implements port.ShareClient.
func (c *Client) SetAPIKey(apiKey string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.apiKey = apiKey
}

// HasAPIKey implements port.ShareClient.
func (c *Client) HasAPIKey() bool {
	return c.getAPIKey() != ""
}

func (c *Client) getAPIKey() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.apiKey
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
		apiKey:     opts.APIKey,
	}
}

var _ port.ShareClient = &Client{}
