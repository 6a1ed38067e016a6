package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/unveil"
	"github.com/fwojciec/unveil/harvest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *unveil.Config
	Logger     *slog.Logger
	Parser     unveil.DocumentParser
	Extractors unveil.ExtractorRegistry
	Runs       unveil.RunService
	Records    unveil.RecordService
	Harvester  *harvest.Harvester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `name:"config" env:"UNVEIL_CONFIG" type:"path" help:"Path to a YAML configuration file"`

	Run      RunCmd      `cmd:"" help:"Harvest configured datasets"`
	Parse    ParseCmd    `cmd:"" help:"Extract records from a local HTML file"`
	Runs     RunsCmd     `cmd:"" help:"List recent harvest runs"`
	Records  RecordsCmd  `cmd:"" help:"Print the records stored for a run"`
	Datasets DatasetsCmd `cmd:"" help:"List configured datasets and sources"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Datasets []string `arg:"" optional:"" help:"Dataset names (default: all configured)"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File     string `arg:"" type:"existingfile" help:"HTML file to parse"`
	Kind     string `short:"k" help:"Dataset kind (default: detected from the page)"`
	Selector string `short:"s" help:"Region of the page to extract (default: first the extractor supports)"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Dataset string `short:"d" help:"Only show runs of this dataset"`
	Limit   int    `short:"n" default:"10" help:"Maximum number of runs to show"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	RunID string `arg:"" name:"run-id" help:"Run ID"`
	Limit int    `short:"n" help:"Maximum number of records to print"`
}

// DatasetsCmd is the "datasets" subcommand.
type DatasetsCmd struct{}
