package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/ogmeta"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.read(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	pairs, err := deps.Pairs.ReadPairs(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	m := deps.Extractor.Extract(pairs)
	if m == nil {
		fmt.Fprintf(deps.Stderr, "error: no og:type found in %s\n", c.Source)
		return ogmeta.Errorf(ogmeta.ENOTFOUND, "no og:type found in %s", c.Source)
	}

	return writeMetadata(deps.Stdout, m, c.Format)
}

// read loads the document from a URL, stdin or a file.
func (c *ExtractCmd) read(deps *Dependencies) (string, error) {
	switch {
	case isURL(c.Source):
		return deps.Fetcher.Fetch(deps.Ctx, c.Source)
	case c.Source == "-":
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(c.Source)
		if err != nil {
			if os.IsNotExist(err) {
				return "", ogmeta.Errorf(ogmeta.ENOTFOUND, "file %q not found", c.Source)
			}
			return "", fmt.Errorf("read %s: %w", c.Source, err)
		}
		return string(data), nil
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// writeMetadata prints m as indented JSON or as aligned text.
func writeMetadata(w io.Writer, m ogmeta.Metadata, format string) error {
	if format == "text" {
		_, err := io.WriteString(w, ogmeta.FormatMetadata(m))
		return err
	}

	data, err := ogmeta.MarshalMetadata(m)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}
