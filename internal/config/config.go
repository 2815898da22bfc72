package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger Logger `envPrefix:"LOGGER_"`
	Client Client
	Store  Store
	Stdin  Stdin
	Update Update `envPrefix:"UPDATE_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "ZEROHOST_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
