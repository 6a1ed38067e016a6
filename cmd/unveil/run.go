package main

import (
	"fmt"

	"github.com/fwojciec/unveil"
)

// Run executes the run command. A failing dataset does not stop the
// remaining ones; the first failure is returned once all have run.
func (c *RunCmd) Run(deps *Dependencies) error {
	datasets, err := c.selectDatasets(deps.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unveil.ErrorMessage(err))
		return err
	}

	var firstErr error
	for _, ds := range datasets {
		result, err := deps.Harvester.Harvest(deps.Ctx, ds)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: dataset %s: %s\n", ds.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d records\n", ds.Name, result.Run.Date, result.Run.ID, result.Run.Records)
	}
	return firstErr
}

func (c *RunCmd) selectDatasets(cfg *unveil.Config) ([]unveil.Dataset, error) {
	if len(c.Datasets) == 0 {
		return cfg.Datasets, nil
	}
	datasets := make([]unveil.Dataset, 0, len(c.Datasets))
	for _, name := range c.Datasets {
		ds, ok := cfg.Dataset(name)
		if !ok {
			return nil, unveil.Errorf(unveil.ENOTFOUND, "dataset %q not found. Use 'unveil datasets' to see configured datasets.", name)
		}
		datasets = append(datasets, *ds)
	}
	return datasets, nil
}
