package main

import (
	"context"
	"flag"
	"fmt"

	"gpx-tools/gpxtools/convert"
	"gpx-tools/gpxtools/terminal"
	"gpx-tools/gpxtools/track"

	"github.com/google/subcommands"
	"github.com/tkrajina/gpxgo/gpx"
)

type infoCmd struct{}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "Print statistics about a GPX track." }
func (*infoCmd) Usage() string {
	return `info <input_file>
	Prints the size, boundaries, distance, elevation and duration of the first track.
  `
}

func (c *infoCmd) SetFlags(f *flag.FlagSet) {}

func (c *infoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Print("Usage: " + c.Usage())
		return subcommands.ExitFailure
	}

	o := terminal.NewOperation("Reading '%s'", f.Arg(0))
	tr, err := loadTrack(f.Arg(0))
	if err != nil {
		o.Error(err, "Failed to read '%s'", f.Arg(0))
		return subcommands.ExitFailure
	}
	o.Success("Read '%s'", f.Arg(0))

	for _, line := range describe(tr) {
		terminal.Info("%s", line)
	}

	return subcommands.ExitSuccess
}

func loadTrack(path string) (*track.Track, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return track.FromGPX(g), nil
}

func describe(tr *track.Track) []string {
	s := tr.Stats()
	if s.Points == 0 {
		return []string{"Points: 0"}
	}

	d, h, m := convert.ToDaysHoursMin(s.Duration)
	return []string{
		fmt.Sprintf("Points: %d", s.Points),
		fmt.Sprintf("Bounds: %s", tr.Bounds()),
		fmt.Sprintf("Distance: %.2f km (%.2f mi)", convert.ToKilometers(s.Distance), convert.ToMiles(s.Distance)),
		fmt.Sprintf("Elevation: %s m to %s m", convert.Ftoan(s.StartElevation), convert.Ftoan(s.EndElevation)),
		fmt.Sprintf("Elevation gain: %s m (%s ft)", convert.Ftoan(s.ElevationGain), convert.Ftoan(convert.ToFeet(s.ElevationGain))),
		fmt.Sprintf("Elevation loss: %s m (%s ft)", convert.Ftoan(s.ElevationLoss), convert.Ftoan(convert.ToFeet(s.ElevationLoss))),
		fmt.Sprintf("Duration: %dd %dh %dm", d, h, m),
	}
}
