// Package textlog converts comma separated GPS logs into GPX documents.
//
// A qualifying line holds exactly five fields:
//
//	date,lat,lon,elevation,speed
//
// where date is missing its century, e.g. 21-05-03T10:00:00Z.
package textlog

import (
	"bufio"
	"io"
	"strings"

	"gpx-tools/gpxtools/gpxdoc"
)

const fieldCount = 5

// Record is one line of a text log. Fields are kept verbatim.
type Record struct {
	Date      string
	Lat       string
	Lon       string
	Elevation string
	Speed     string
}

// Stats counts the lines seen while reading a log
type Stats struct {
	Lines   int
	Skipped int
}

// Time returns the record date completed with its century
func (r Record) Time() string {
	return "20" + r.Date
}

// ParseLine splits a log line. Lines without exactly five fields don't qualify.
func ParseLine(line string) (Record, bool) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	if len(fields) != fieldCount {
		return Record{}, false
	}

	return Record{
		Date:      fields[0],
		Lat:       fields[1],
		Lon:       fields[2],
		Elevation: fields[3],
		Speed:     fields[4],
	}, true
}

// Read returns every qualifying record of r in order. Lines may be of any length.
func Read(r io.Reader) ([]Record, Stats, error) {
	var records []Record
	var stats Stats

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			stats.Lines++
			if rec, ok := ParseLine(line); ok {
				records = append(records, rec)
			} else {
				stats.Skipped++
			}
		}
		if err == io.EOF {
			return records, stats, nil
		}
		if err != nil {
			return records, stats, err
		}
	}
}

// Convert builds a GPX 1.0 document with one track point per record
func Convert(records []Record, namespace, schemaLocation string) (*gpxdoc.Document, error) {
	doc := gpxdoc.New(namespace, schemaLocation)
	for _, r := range records {
		err := doc.AppendPoint(r.Lat, r.Lon,
			gpxdoc.Child{Tag: "time", Text: r.Time()},
			gpxdoc.Child{Tag: "ele", Text: r.Elevation},
			gpxdoc.Child{Tag: "speed", Text: r.Speed},
		)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}
