package main

import (
	"fmt"
	"os"

	"github.com/nmxmxh/navcaps/config"
	"github.com/nmxmxh/navcaps/internal/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
