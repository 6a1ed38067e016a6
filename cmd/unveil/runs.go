package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/unveil"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := unveil.RunFilter{Limit: c.Limit}
	if c.Dataset != "" {
		filter.Dataset = &c.Dataset
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unveil.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'unveil run' to harvest a dataset.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d records  %s\n", r.ID, r.Dataset, r.Date, r.Records, r.CreatedAt.Format(time.RFC3339))
		for _, p := range r.Pages {
			fmt.Fprintf(deps.Stdout, "    %s  %s  %d bytes  %d records\n", p.Source, p.ContentHash, p.Bytes, p.Records)
		}
	}

	return nil
}
