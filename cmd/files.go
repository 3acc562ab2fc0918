package main

import (
	"log/slog"

	"gpx-tools/gpxtools/config"
	"gpx-tools/gpxtools/gpxdoc"
	"gpx-tools/gpxtools/terminal"
)

func loadDocument(path string) (*gpxdoc.Document, error) {
	o := terminal.NewOperation("Reading '%s'", path)
	doc, err := gpxdoc.Load(path)
	if err != nil {
		o.Error(err, "Failed to read '%s'", path)
		return nil, err
	}
	o.Success("Read '%s'", path)
	return doc, nil
}

// saveDocument writes a document exactly as it was read or built
func saveDocument(cfg *config.Config, doc *gpxdoc.Document, path string) error {
	data, err := doc.Bytes()
	if err != nil {
		return err
	}
	return saveBytes(cfg, data, path)
}

func saveBytes(cfg *config.Config, data []byte, path string) error {
	o := terminal.NewOperation("Writing '%s'", path)
	if err := gpxdoc.WriteFile(path, data, cfg.AtomicOutput); err != nil {
		o.Error(err, "Failed to write '%s'", path)
		return err
	}
	slog.Debug("wrote gpx file", "path", path, "bytes", len(data), "atomic", cfg.AtomicOutput)
	o.Success("Wrote '%s'", path)
	return nil
}
