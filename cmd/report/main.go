// Command report renders holdings reports from a CSV or XLSX file without
// running the API server.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"assetboard/internal/logger"
)

var commands = []subcommands.Command{
	&investorsCmd{},
	&summaryCmd{},
	&reportCmd{},
	&chartCmd{},
}

func main() {
	logger.Init("development", "warn")
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
