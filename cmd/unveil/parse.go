package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/unveil"
)

// Run executes the parse command, printing one JSON object per record.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var extractor unveil.Extractor
	kind := c.Kind
	if kind == "" {
		extractor, kind = deps.Extractors.GetForHTML(string(data))
	} else {
		extractor = deps.Extractors.Get(kind)
	}
	if extractor == nil {
		fmt.Fprintf(deps.Stderr, "error: no extractor for %s. Use --kind to pick one of: %v\n", c.File, deps.Extractors.List())
		return unveil.Errorf(unveil.EINVALID, "no extractor for dataset kind %q", kind)
	}

	selector := c.Selector
	if selector == "" {
		selector = extractor.Selectors()[0]
	}

	root, err := deps.Parser.Parse(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	records, err := extractor.Extract(root, selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unveil.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	for record := range records {
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	return nil
}
