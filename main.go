package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/vedro-universe/vedro-gitlab-reporter/internal/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(cmd.ReportCmd(), "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
