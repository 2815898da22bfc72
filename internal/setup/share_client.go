package setup

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bornholm/zerohost/internal/build"
	"github.com/bornholm/zerohost/internal/config"
	"github.com/bornholm/zerohost/pkg/client"
	"github.com/pkg/errors"
)

var getShareClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*client.Client, error) {
	baseURL, err := url.Parse(conf.Client.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", conf.Client.BaseURL)
	}

	return client.New(
		client.WithBaseURL(baseURL),
		client.WithTimeout(conf.Client.Timeout),
		client.WithUserAgent(fmt.Sprintf("%s/%s", client.DefaultUserAgent, build.ShortVersion)),
	), nil
})
