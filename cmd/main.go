package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"gpx-tools/gpxtools/config"
	t "gpx-tools/gpxtools/terminal"

	"github.com/google/subcommands"
)

func main() {

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&simplifyCmd{}, "tracks")
	subcommands.Register(&shiftCmd{}, "tracks")
	subcommands.Register(&txt2gpxCmd{}, "tracks")
	subcommands.Register(&infoCmd{}, "tracks")

	cfgFile := flag.String("config", "", "config file (default is ./.gpx-tools.yaml, then $HOME/.gpx-tools.yaml)")
	verbose := flag.Bool("v", false, "log debug information to stderr")
	flag.Parse()

	setupLogging(*verbose)

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		t.Error(err, "Failed to load config")
		os.Exit(1)
	}
	t.Setup(os.Stdout, cfg.ColorOutput)
	if cfg.File != "" {
		slog.Debug("using config file", "path", cfg.File)
	}

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, cfg)))
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
