package main

import (
	"github.com/pkazanov/portfolio/cmd"

	// Subcommands register themselves on the root command via init().
	_ "github.com/pkazanov/portfolio/cmd/cli"
	_ "github.com/pkazanov/portfolio/cmd/server"
)

func main() {
	cmd.Execute()
}
