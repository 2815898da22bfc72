package config

import "time"

type Client struct {
	BaseURL string        `env:"BASE_URL,expand" envDefault:"https://api.zerohost.net"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
