package main

import "fmt"

// Run executes the datasets command.
func (c *DatasetsCmd) Run(deps *Dependencies) error {
	if len(deps.Config.Datasets) == 0 {
		fmt.Fprintln(deps.Stdout, "No datasets configured.")
		return nil
	}

	for _, ds := range deps.Config.Datasets {
		fmt.Fprintf(deps.Stdout, "%s  (%s)\n", ds.Name, ds.Kind)
		for _, src := range ds.Sources {
			fmt.Fprintf(deps.Stdout, "    %s  %s  %s\n", src.Name, src.Selector, src.URL)
		}
	}
	return nil
}
