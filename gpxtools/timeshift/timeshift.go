// Package timeshift moves the timestamps of a GPX track by a fixed offset.
package timeshift

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gpx-tools/gpxtools/gpxdoc"
)

// ErrTime is returned when a timestamp cannot be parsed
var ErrTime = errors.New("malformed timestamp")

// accepted layouts; fractional seconds are parsed even when the layout omits them
var layouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 UTC timestamp with an optional trailing 'Z'
func ParseTime(text string) (time.Time, error) {
	s := strings.TrimSuffix(text, "Z")
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: '%s'", ErrTime, text)
}

// FormatTime formats t as ISO-8601 UTC with a trailing 'Z'. Microseconds are
// only written when non-zero, anything finer is dropped.
func FormatTime(t time.Time) string {
	t = t.UTC()
	s := t.Format("2006-01-02T15:04:05")
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s + "Z"
}

// Shift adds minutes to every time child (matched by its exact local tag
// name) of the document's track points and returns how many were changed.
// Points without such a child are left as they are.
func Shift(doc *gpxdoc.Document, minutes int, tag string) (int, error) {
	elements, err := doc.PointElements()
	if err != nil {
		return 0, err
	}

	offset := time.Duration(minutes) * time.Minute
	shifted := 0
	for i, pt := range elements {
		for _, child := range pt.ChildElements() {
			if child.Tag != tag {
				continue
			}

			t, err := ParseTime(child.Text())
			if err != nil {
				return shifted, fmt.Errorf("point %d: %w", i+1, err)
			}
			child.SetText(FormatTime(t.Add(offset)))
			shifted++
		}
	}

	return shifted, nil
}
