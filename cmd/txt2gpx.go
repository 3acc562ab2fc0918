package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gpx-tools/gpxtools/config"
	"gpx-tools/gpxtools/terminal"
	"gpx-tools/gpxtools/textlog"

	"github.com/google/subcommands"
)

type txt2gpxCmd struct{}

func (*txt2gpxCmd) Name() string     { return "txt2gpx" }
func (*txt2gpxCmd) Synopsis() string { return "Convert a comma separated GPS log to GPX." }
func (*txt2gpxCmd) Usage() string {
	return `txt2gpx <input_file> <output_file>
	Converts lines of 'date,lat,lon,elevation,speed' into GPX track points.
	Other lines are skipped.
  `
}

func (c *txt2gpxCmd) SetFlags(f *flag.FlagSet) {}

func (c *txt2gpxCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	if f.NArg() != 2 {
		fmt.Print("Usage: " + c.Usage())
		return subcommands.ExitFailure
	}

	n, stats, err := convertLog(cfg, f.Arg(0), f.Arg(1))
	if err != nil {
		terminal.Error(err, "Couldn't convert '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}

	terminal.Info("Track converted!")
	terminal.Info("Points written: %d", n)
	terminal.Info("Lines skipped: %d", stats.Skipped)

	return subcommands.ExitSuccess
}

func convertLog(cfg *config.Config, input, output string) (int, textlog.Stats, error) {
	f, err := os.Open(input)
	if err != nil {
		return 0, textlog.Stats{}, err
	}
	defer f.Close()

	records, stats, err := textlog.Read(f)
	if err != nil {
		return 0, stats, err
	}

	doc, err := textlog.Convert(records, cfg.Namespace, cfg.SchemaLocation)
	if err != nil {
		return 0, stats, err
	}

	data, err := doc.BytesWithHeader()
	if err != nil {
		return 0, stats, err
	}

	return len(records), stats, saveBytes(cfg, data, output)
}
