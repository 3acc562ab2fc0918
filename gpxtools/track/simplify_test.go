package track_test

import (
	"gpx-tools/gpxtools/track"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// labeled carries an opaque payload next to its position
type labeled struct {
	track.Point
	label string
}

func TestSimplify(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input     []track.Point
		threshold float64
		want      []track.Point
	}{
		"empty": {
			input:     []track.Point{},
			threshold: 50,
			want:      []track.Point{},
		},
		"single": {
			input:     []track.Point{pt(10, 10)},
			threshold: 1e9,
			want:      []track.Point{pt(10, 10)},
		},
		"short_hop_removed": {
			input:     []track.Point{pt(0, 0), pt(0, 0.0001), pt(0, 0.01), pt(0, 0.02)},
			threshold: 50,
			want:      []track.Point{pt(0, 0), pt(0, 0.01), pt(0, 0.02)},
		},
		"duplicates_removed": {
			input:     []track.Point{pt(1, 1), pt(1, 1), pt(1, 1), pt(1, 2)},
			threshold: 1,
			want:      []track.Point{pt(1, 1), pt(1, 2)},
		},
		"zero_threshold_keeps_duplicates": {
			input:     []track.Point{pt(1, 1), pt(1, 1), pt(1, 2)},
			threshold: 0,
			want:      []track.Point{pt(1, 1), pt(1, 1), pt(1, 2)},
		},
		"compares_with_original_predecessor": {
			// every hop is ~33m, so the whole drift is dropped even though
			// the last point ends ~100m away from the first one
			input:     []track.Point{pt(0, 0), pt(0, 0.0003), pt(0, 0.0006), pt(0, 0.0009)},
			threshold: 50,
			want:      []track.Point{pt(0, 0)},
		},
		"first_point_kept": {
			input:     []track.Point{pt(0, 0), pt(0, 0)},
			threshold: 1e9,
			want:      []track.Point{pt(0, 0)},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := track.Simplify(tc.input, tc.threshold)
			require.NoError(err)
			require.Equal(tc.want, res.Points)
			require.Equal(len(tc.input), res.Total)
			require.Equal(len(tc.input)-len(tc.want), res.Removed)
		})
	}
}

func TestSimplifyScenario(t *testing.T) {
	require := require.New(t)

	res, err := track.Simplify([]track.Point{pt(0, 0), pt(0, 0.0001), pt(0, 0.01), pt(0, 0.02)}, 50)
	require.NoError(err)
	require.Equal(4, res.Total)
	require.Equal(1, res.Removed)
}

func TestSimplifyInvalidThreshold(t *testing.T) {
	require := require.New(t)

	for _, threshold := range []float64{-1, -0.0001, math.NaN()} {
		_, err := track.Simplify([]track.Point{pt(0, 0)}, threshold)
		require.ErrorIs(err, track.ErrInvalidThreshold)
	}
}

func TestSimplifyKeepsPayloadAndOrder(t *testing.T) {
	require := require.New(t)

	input := []labeled{
		{pt(0, 0), "a"},
		{pt(0, 0.00001), "b"},
		{pt(0, 0.01), "c"},
		{pt(0, 0.01), "d"},
		{pt(0, 0.03), "e"},
	}
	original := append([]labeled(nil), input...)

	res, err := track.Simplify(input, 10)
	require.NoError(err)

	labels := []string{}
	for _, p := range res.Points {
		labels = append(labels, p.label)
	}
	require.Equal([]string{"a", "c", "e"}, labels)
	require.Equal(2, res.Removed)
	require.Equal(original, input)
}

func TestSimplifyMonotonicThreshold(t *testing.T) {
	require := require.New(t)

	input := []track.Point{
		pt(47.57766745244047, -121.9222328066826),
		pt(47.57766745244047, -121.92229181528094),
		pt(47.57766202426469, -121.9223776459694),
		pt(47.57766926183228, -121.92240983247758),
		pt(47.57767107122401, -121.92243933677675),
		pt(47.57766564304861, -121.92247420549394),
		pt(47.5776638336567, -121.92250907421113),
		pt(47.57766926183228, -121.92255467176439),
		pt(47.57783753499646, -121.92247152328491),
		pt(47.577676499398855, -121.92256540060045),
		pt(47.57767830879033, -121.92258685827257),
		pt(47.57766564304861, -121.9226109981537),
		pt(47.57764393034137, -121.92261904478075),
		pt(47.577622217625134, -121.92261636257173),
	}

	previous := -1
	for _, threshold := range []float64{0, 1, 2, 3, 5, 8, 13, 21, 50} {
		res, err := track.Simplify(input, threshold)
		require.NoError(err)
		require.GreaterOrEqual(res.Removed, previous)
		require.Equal(input[0], res.Points[0])
		previous = res.Removed
	}
}
