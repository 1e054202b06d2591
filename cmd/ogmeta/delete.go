package main

import (
	"fmt"

	"github.com/fwojciec/ogmeta"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return ogmeta.Errorf(ogmeta.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Pages.DeletePage(deps.Ctx, c.URL); err != nil {
		if ogmeta.ErrorCode(err) == ogmeta.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'ogmeta list' to see stored pages.\n", c.URL)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted page %q\n", c.URL)
	return nil
}
