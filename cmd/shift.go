package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"gpx-tools/gpxtools/config"
	"gpx-tools/gpxtools/terminal"
	"gpx-tools/gpxtools/timeshift"

	"github.com/google/subcommands"
)

type shiftCmd struct{}

func (*shiftCmd) Name() string     { return "shift" }
func (*shiftCmd) Synopsis() string { return "Shift every timestamp of a GPX track." }
func (*shiftCmd) Usage() string {
	return `shift <input_file> <output_file> <minutes>
	Adds minutes (may be negative) to the time of every track point.
  `
}

func (c *shiftCmd) SetFlags(f *flag.FlagSet) {}

func (c *shiftCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	if f.NArg() != 3 {
		fmt.Print("Usage: " + c.Usage())
		return subcommands.ExitFailure
	}

	minutes, err := strconv.Atoi(f.Arg(2))
	if err != nil {
		terminal.Error(err, "Invalid number of minutes '%s'", f.Arg(2))
		return subcommands.ExitFailure
	}

	n, err := shiftTrack(cfg, f.Arg(0), f.Arg(1), minutes)
	if err != nil {
		terminal.Error(err, "Couldn't shift '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}

	terminal.Info("Track time shifted!")
	terminal.Info("Points shifted: %d", n)

	return subcommands.ExitSuccess
}

func shiftTrack(cfg *config.Config, input, output string, minutes int) (int, error) {
	doc, err := loadDocument(input)
	if err != nil {
		return 0, err
	}

	n, err := timeshift.Shift(doc, minutes, cfg.TimeTag)
	if err != nil {
		return n, err
	}
	slog.Debug("shifted track", "minutes", minutes, "points", n, "tag", cfg.TimeTag)

	return n, saveDocument(cfg, doc, output)
}
