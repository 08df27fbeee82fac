package main

import (
	"os"

	"github.com/stackpack/stackpack/pkg/cli"
	"github.com/stackpack/stackpack/pkg/util/console"
)

func main() {
	// drop ANSI colors when stderr is piped or redirected
	console.SetColor(console.IsTTY(os.Stderr))

	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("%s", err)
	}

	if err = cmd.Execute(); err != nil {
		console.Fatalf("%s", err)
	}
}
