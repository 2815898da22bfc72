package client

import (
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "ZeroHost-CLI"
)

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	UserAgent  string
	APIKey     string
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient.Timeout = timeout
	}
}

func WithUserAgent(userAgent string) OptionFunc {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

func WithAPIKey(apiKey string) OptionFunc {
	return func(opts *Options) {
		opts.APIKey = apiKey
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "https",
			Host:   "api.zerohost.net",
		},
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &RequestIDTransport{
				Base: http.DefaultTransport,
			},
		},
		UserAgent: DefaultUserAgent,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
