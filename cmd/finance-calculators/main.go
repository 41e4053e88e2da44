package main

import (
	"os"

	"github.com/iwvelando/finance-calculators/cmd/finance-calculators/commands"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		os.Exit(1)
	}
}
