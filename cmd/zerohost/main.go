package main

import (
	"github.com/bornholm/zerohost/internal/command"
	"github.com/bornholm/zerohost/internal/command/share"

	// Credential stores

	_ "github.com/bornholm/zerohost/internal/adapter/keyring"
	_ "github.com/bornholm/zerohost/internal/adapter/memory"
	_ "github.com/bornholm/zerohost/internal/adapter/settings"
)

func main() {
	command.Main(
		"zerohost", "share ephemeral text from the command line",
		share.Command(),
	)
}
