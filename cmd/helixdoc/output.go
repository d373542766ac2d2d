package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/helixdoc"
	"github.com/fwojciec/helixdoc/csv"
	"github.com/fwojciec/helixdoc/etree"
	"github.com/fwojciec/helixdoc/json"
)

// Output formats, chosen from the output path extension.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// FormatForPath returns the output format for path. Paths without a known
// extension are written as CSV.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".xml":
		return FormatXML
	default:
		return FormatCSV
	}
}

// NewEndpointWriter returns the writer for format, writing to w. Compact
// drops the indentation of JSON output.
func NewEndpointWriter(format string, w io.Writer, compact bool) (helixdoc.EndpointWriter, error) {
	switch format {
	case FormatCSV:
		return csv.NewWriter(w), nil
	case FormatJSON:
		if compact {
			return json.NewWriter(w, json.WithIndent("")), nil
		}
		return json.NewWriter(w), nil
	case FormatXML:
		return etree.NewWriter(w), nil
	default:
		return nil, helixdoc.Errorf(helixdoc.EINVALID, "unknown output format %q", format)
	}
}

// NewFileOpener returns an OutputOpener that creates path, including parent
// directories, and returns a buffered writer for its format.
func NewFileOpener(compact bool) OutputOpener {
	return func(path string) (helixdoc.EndpointWriter, io.Closer, error) {
		return openFileOutput(path, compact)
	}
}

func openFileOutput(path string, compact bool) (helixdoc.EndpointWriter, io.Closer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	out := &fileOutput{f: f, buf: bufio.NewWriter(f)}
	w, err := NewEndpointWriter(FormatForPath(path), out.buf, compact)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return w, out, nil
}

// fileOutput flushes buffered output before closing the file.
type fileOutput struct {
	f   *os.File
	buf *bufio.Writer
}

func (o *fileOutput) Close() error {
	if err := o.buf.Flush(); err != nil {
		o.f.Close()
		return err
	}
	return o.f.Close()
}
