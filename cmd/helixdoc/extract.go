package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/helixdoc"
	helixslog "github.com/fwojciec/helixdoc/slog"
	"github.com/fwojciec/helixdoc/sqlite"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	url := deps.Config.ReferenceURL

	doc, err := deps.Loader.Load(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helixdoc.ErrorMessage(err))
		return err
	}

	endpoints := deps.Extractor.Extract(doc.Root)
	c.checkSections(deps, doc, len(endpoints))

	fmt.Fprintf(deps.Stdout, "Found %d Endpoints\n", len(endpoints))

	if c.Preview {
		if len(endpoints) > 0 {
			fmt.Fprintln(deps.Stdout, helixdoc.FormatEndpoints(endpoints))
		}
		return nil
	}

	return c.write(deps, doc, endpoints)
}

// checkSections warns when the page does not look like the reference layout
// or when the extractor and the selector-based count disagree.
func (c *ExtractCmd) checkSections(deps *Dependencies, doc *helixdoc.Document, extracted int) {
	if deps.Detector == nil {
		return
	}
	sections := deps.Detector.CountSections(doc.HTML)
	if sections == 0 {
		fmt.Fprintln(deps.Stderr, "Hint: no reference sections found; if the page renders client-side, retry with --browser")
		return
	}
	if sections != extracted && deps.Logger != nil {
		deps.Logger.Warn("section count mismatch", "sections", sections, "endpoints", extracted)
	}
}

// write fans the endpoints out to every output and, when a database is
// configured, to a new snapshot.
func (c *ExtractCmd) write(deps *Dependencies, doc *helixdoc.Document, endpoints []*helixdoc.Endpoint) (err error) {
	type output struct {
		name string
		w    helixdoc.EndpointWriter
	}

	var outputs []output
	var closers []io.Closer
	defer func() {
		for _, cl := range closers {
			err = errors.Join(err, cl.Close())
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", helixdoc.ErrorMessage(err))
		}
	}()

	for _, path := range deps.Config.Outputs {
		w, closer, err := deps.OpenOutput(path)
		if err != nil {
			return err
		}
		closers = append(closers, closer)
		outputs = append(outputs, output{name: path, w: w})
	}

	var snapshot *sqlite.SnapshotWriter
	if deps.Snapshots != nil {
		snapshot = &sqlite.SnapshotWriter{
			Service:     deps.Snapshots,
			SourceURL:   doc.URL,
			ContentHash: sqlite.HashContent(doc.HTML),
		}
		outputs = append(outputs, output{name: "snapshot", w: snapshot})
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	for _, out := range outputs {
		w := out.w
		if deps.Logger != nil {
			w = helixslog.NewLoggingEndpointWriter(w, out.name, deps.Logger)
		}
		g.Go(func() error {
			if err := w.WriteEndpoints(ctx, endpoints); err != nil {
				return fmt.Errorf("write %s: %w", out.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, path := range deps.Config.Outputs {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	}
	if snapshot != nil && snapshot.Snapshot != nil {
		fmt.Fprintf(deps.Stdout, "Saved snapshot %s\n", snapshot.Snapshot.ID)
	}
	return nil
}
