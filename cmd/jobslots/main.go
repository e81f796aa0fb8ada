package main

import (
	"os"

	"github.com/grovetools/jobslots/cli"
	"github.com/grovetools/jobslots/cmd"
)

func main() {
	os.Exit(cli.Execute(cmd.NewRootCmd()))
}
