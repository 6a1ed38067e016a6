package main

import (
	"fmt"

	"github.com/fwojciec/unveil"
)

// Run executes the records command, printing each stored payload on its
// own line.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	if _, err := deps.Runs.FindRunByID(deps.Ctx, c.RunID); err != nil {
		if unveil.ErrorCode(err) == unveil.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'unveil runs' to see recent runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", unveil.ErrorMessage(err))
		}
		return err
	}

	records, err := deps.Records.FindRecords(deps.Ctx, unveil.RecordFilter{RunID: &c.RunID, Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unveil.ErrorMessage(err))
		return err
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s\n", r.Payload)
	}
	return nil
}
