package config

import "time"

type Update struct {
	Check      bool          `env:"CHECK" envDefault:"true"`
	Repository string        `env:"REPOSITORY" envDefault:"Bornholm/zerohost"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"2s"`
}
