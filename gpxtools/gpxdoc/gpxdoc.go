// Package gpxdoc reads and writes GPX documents as element trees, so that
// everything it does not touch is written back exactly as it was read.
package gpxdoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
)

// Header is the XML declaration written in front of generated documents
const Header = `<?xml version="1.0" encoding="UTF-8" ?>`

var (
	// ErrParse is returned when the input is not well-formed XML
	ErrParse = errors.New("malformed gpx document")
	// ErrNoSegment is returned when the document has no trk/trkseg element
	ErrNoSegment = errors.New("gpx document has no track segment")
	// ErrMalformedPoint is returned when a trkpt lacks a valid lat or lon attribute
	ErrMalformedPoint = errors.New("malformed track point")
)

// Document is a parsed GPX file
type Document struct {
	doc *etree.Document
}

// TrackPoint is a trkpt element along with its parsed coordinates
type TrackPoint struct {
	Latitude  float64
	Longitude float64
	Element   *etree.Element
}

// Lat returns the latitude in degrees
func (p TrackPoint) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p TrackPoint) Lng() float64 {
	return p.Longitude
}

// Load reads and parses the GPX file at path
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse parses a GPX document from r
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return &Document{doc: doc}, nil
}

// Root returns the gpx element
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// Segment returns the first segment of the first track
func (d *Document) Segment() (*etree.Element, error) {
	trk := d.Root().SelectElement("trk")
	if trk == nil {
		return nil, ErrNoSegment
	}
	seg := trk.SelectElement("trkseg")
	if seg == nil {
		return nil, ErrNoSegment
	}
	return seg, nil
}

// PointElements returns the trkpt elements of the first segment, in document order
func (d *Document) PointElements() ([]*etree.Element, error) {
	seg, err := d.Segment()
	if err != nil {
		return nil, err
	}
	return seg.SelectElements("trkpt"), nil
}

// TrackPoints returns the points of the first segment, in document order
func (d *Document) TrackPoints() ([]TrackPoint, error) {
	elements, err := d.PointElements()
	if err != nil {
		return nil, err
	}

	pts := make([]TrackPoint, len(elements))
	for i, el := range elements {
		lat, err := coordinate(el, "lat")
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i+1, err)
		}
		lon, err := coordinate(el, "lon")
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i+1, err)
		}
		pts[i] = TrackPoint{Latitude: lat, Longitude: lon, Element: el}
	}

	return pts, nil
}

// Retain removes from the first segment every trkpt not listed in points.
// Retained elements are left untouched.
func (d *Document) Retain(points []TrackPoint) error {
	seg, err := d.Segment()
	if err != nil {
		return err
	}

	keep := make(map[*etree.Element]bool, len(points))
	for _, p := range points {
		keep[p.Element] = true
	}

	tokens := make([]etree.Token, 0, len(seg.Child))
	for _, t := range seg.Child {
		if el, ok := t.(*etree.Element); ok && el.Tag == "trkpt" && !keep[el] {
			// drop the indentation in front of the removed point as well
			if n := len(tokens); n > 0 {
				if cd, ok := tokens[n-1].(*etree.CharData); ok && cd.IsWhitespace() {
					tokens = tokens[:n-1]
				}
			}
			continue
		}
		tokens = append(tokens, t)
	}

	for len(seg.Child) > 0 {
		seg.RemoveChildAt(len(seg.Child) - 1)
	}
	for _, t := range tokens {
		seg.AddChild(t)
	}

	return nil
}

// Bytes serializes the document as it was read
func (d *Document) Bytes() ([]byte, error) {
	return d.doc.WriteToBytes()
}

// BytesWithHeader serializes the document right after the fixed XML declaration
func (d *Document) BytesWithHeader() ([]byte, error) {
	b, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return append([]byte(Header), b...), nil
}

func coordinate(el *etree.Element, attr string) (float64, error) {
	a := el.SelectAttr(attr)
	if a == nil {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedPoint, attr)
	}
	v, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s '%s'", ErrMalformedPoint, attr, a.Value)
	}
	return v, nil
}
