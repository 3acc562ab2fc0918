package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"gpx-tools/gpxtools/config"
	"gpx-tools/gpxtools/gpxdoc"
	"gpx-tools/gpxtools/terminal"
	"gpx-tools/gpxtools/track"

	"github.com/google/subcommands"
)

type simplifyCmd struct{}

func (*simplifyCmd) Name() string     { return "simplify" }
func (*simplifyCmd) Synopsis() string { return "Remove pauses and GPS noise from a GPX track." }
func (*simplifyCmd) Usage() string {
	return `simplify <input_file> <output_file> <threshold_meters>
	Drops every track point closer than threshold_meters to the point recorded before it.
  `
}

func (c *simplifyCmd) SetFlags(f *flag.FlagSet) {}

func (c *simplifyCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	if f.NArg() != 3 {
		fmt.Print("Usage: " + c.Usage())
		return subcommands.ExitFailure
	}

	threshold, err := strconv.ParseFloat(f.Arg(2), 64)
	if err != nil {
		terminal.Error(err, "Invalid threshold '%s'", f.Arg(2))
		return subcommands.ExitFailure
	}

	res, err := simplifyTrack(cfg, f.Arg(0), f.Arg(1), threshold)
	if err != nil {
		terminal.Error(err, "Couldn't simplify '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}

	terminal.Info("Track simplified!")
	terminal.Info("Initial number of points: %d", res.Total)
	terminal.Info("Points removed: %d", res.Removed)

	return subcommands.ExitSuccess
}

func simplifyTrack(cfg *config.Config, input, output string, threshold float64) (track.Simplified[gpxdoc.TrackPoint], error) {
	var res track.Simplified[gpxdoc.TrackPoint]

	if err := track.ValidateThreshold(threshold); err != nil {
		return res, err
	}

	doc, err := loadDocument(input)
	if err != nil {
		return res, err
	}

	pts, err := doc.TrackPoints()
	if err != nil {
		return res, err
	}

	res, err = track.Simplify(pts, threshold)
	if err != nil {
		return res, err
	}
	slog.Debug("simplified track", "threshold", threshold, "total", res.Total, "removed", res.Removed)

	if err := doc.Retain(res.Points); err != nil {
		return res, err
	}

	return res, saveDocument(cfg, doc, output)
}
