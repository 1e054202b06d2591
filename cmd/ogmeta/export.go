package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := ogmeta.PageFilter{}
	if c.Kind != "" {
		kind := ogmeta.Kind(c.Kind)
		if !kind.Valid() {
			fmt.Fprintf(deps.Stderr, "error: unknown kind %q\n", c.Kind)
			return ogmeta.Errorf(ogmeta.EINVALID, "unknown kind %q", c.Kind)
		}
		filter.Kind = &kind
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	exporter := fs.NewExporter(filepath.Dir(dir), filepath.Base(dir))
	for _, p := range pages {
		if err := exporter.Save(p); err != nil {
			_ = exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error: export %s: %s\n", p.URL, errorMessage(err))
			return err
		}
	}
	if err := exporter.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(pages), exporter.Dir())
	return nil
}
