package exporter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/klauspost/compress/gzip"

	"github.com/ecopia-map/export3ds/internal/document"
	"github.com/ecopia-map/export3ds/internal/mesh"
	"github.com/ecopia-map/export3ds/internal/scene"
)

// Builds a fresh document from the visible objects, in the given order. Hidden objects are skipped.
func BuildDocument(objects []scene.Object, settings mesh.Settings) (*document.Document, error) {
	doc := document.New(settings)
	for _, object := range objects {
		if !object.Visible() {
			glog.V(1).Infof("skipping hidden object %q", object.Name())
			continue
		}
		if err := doc.AddObject(object); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Serializes the visible objects as a 3DS document to w
func ExportTo(objects []scene.Object, w io.Writer, settings mesh.Settings) error {
	doc, err := BuildDocument(objects, settings)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := doc.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Writes the visible objects as a 3DS file at destination, replacing any existing content.
// A destination ending in .gz is gzip compressed. The file is closed on every path; a file left
// incomplete by a write error is not removed.
func Export(objects []scene.Object, destination string, settings mesh.Settings) (err error) {
	doc, err := BuildDocument(objects, settings)
	if err != nil {
		return err
	}

	file, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	var w io.Writer = file
	if strings.HasSuffix(strings.ToLower(destination), ".gz") {
		zw := gzip.NewWriter(file)
		defer func() {
			if closeErr := zw.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		w = zw
	}

	bw := bufio.NewWriter(w)
	if _, err = doc.WriteTo(bw); err != nil {
		return fmt.Errorf("writing %s: %w", destination, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", destination, err)
	}

	glog.V(1).Infof("wrote %s: %d objects, %d materials", destination, doc.ObjectCount(), doc.MaterialCount())
	return nil
}
