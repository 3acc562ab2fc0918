package gpxdoc

import "github.com/beevik/etree"

// Child is a simple text element of a track point
type Child struct {
	Tag  string
	Text string
}

// New creates a GPX 1.0 document holding a single empty track segment
func New(namespace, schemaLocation string) *Document {
	doc := etree.NewDocument()

	root := etree.NewElement("gpx")
	root.CreateAttr("version", "1.0")
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	root.CreateAttr("xmlns", namespace)
	root.CreateAttr("xsi:schemaLocation", schemaLocation)
	doc.SetRoot(root)

	root.CreateElement("trk").CreateElement("trkseg")

	return &Document{doc: doc}
}

// AppendPoint adds a trkpt at the end of the first segment. Coordinates are
// written as given.
func (d *Document) AppendPoint(lat, lon string, children ...Child) error {
	seg, err := d.Segment()
	if err != nil {
		return err
	}

	pt := seg.CreateElement("trkpt")
	pt.CreateAttr("lat", lat)
	pt.CreateAttr("lon", lon)
	for _, c := range children {
		pt.CreateElement(c.Tag).SetText(c.Text)
	}

	return nil
}
