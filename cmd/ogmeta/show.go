package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/ogmeta"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.FindPageByURL(deps.Ctx, c.URL)
	if err != nil {
		if ogmeta.ErrorCode(err) == ogmeta.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'ogmeta list' to see stored pages.\n", c.URL)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if c.Format == "text" {
		fmt.Fprintf(deps.Stdout, "# %s (extracted %s)\n", page.URL, page.ExtractedAt.Format(time.RFC3339))
	}
	return writeMetadata(deps.Stdout, page.Metadata, c.Format)
}
