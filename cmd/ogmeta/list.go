package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/ogmeta"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := ogmeta.PageFilter{Limit: c.Limit}
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

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found. Use 'ogmeta scrape' to add some.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range pages {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Kind, p.URL, p.Title)
	}
	return w.Flush()
}
