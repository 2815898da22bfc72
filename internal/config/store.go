package config

import "time"

// Store selects the credential store. URI is either a bare scheme
// ("file", "keyring", "memory") or a full URI such as "file:///etc/zerohost".
type Store struct {
	URI       string `env:"CREDENTIAL_STORE" envDefault:"file://"`
	ConfigDir string `env:"CONFIG_DIR,expand"`
}

type Stdin struct {
	Guard time.Duration `env:"STDIN_GUARD" envDefault:"100ms"`
}
