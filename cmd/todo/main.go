package main

import (
	"flag"
	"fmt"
	"os"

	"todo/internal/cli"
	"todo/internal/config"
	"todo/internal/logging"
	"todo/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	file := flag.String("file", "", "project file path (default todos.json)")
	groupPending := flag.Bool("group", false, "group list output by pending/done")
	sortPrio := flag.Bool("sort", false, "order list output by priority")
	yes := flag.Bool("yes", false, "skip confirmation prompts")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, *debug)
	ui.SetTheme(cfg.Theme)

	// Flag beats env beats config file.
	projectFile := cfg.File
	if *file != "" {
		projectFile = *file
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		File:  projectFile,
		Group: *groupPending,
		Sort:  *sortPrio,
		Yes:   *yes,
	}, ui.NewReporter())
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
