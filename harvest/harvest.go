// Package harvest runs datasets end to end: it fetches every source page,
// archives the raw markup, extracts records with the dataset's extractor,
// publishes the batch and records the run.
package harvest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/unveil"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the sources fetched at once when Concurrency
// is unset.
const DefaultConcurrency = 2

// Harvester orchestrates dataset runs.
type Harvester struct {
	Fetcher    unveil.Fetcher
	Limiter    unveil.DomainLimiter
	Parser     unveil.DocumentParser
	Extractors unveil.ExtractorRegistry
	Artifacts  unveil.ArtifactStore
	Runs       unveil.RunService
	Records    unveil.RecordService
	Logger     *slog.Logger

	Concurrency int
	RetryDelays []time.Duration

	// Now returns the run time. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a dataset run.
type Result struct {
	Run     *unveil.Run
	Records []unveil.Record
}

// page is the outcome of harvesting a single source.
type page struct {
	info    unveil.RunPage
	records []unveil.Record
}

// Harvest runs a dataset. Sources are fetched concurrently, but records are
// published in source order. Any source failing to fetch or extract aborts
// the run before anything is published.
func (h *Harvester) Harvest(ctx context.Context, ds unveil.Dataset) (*Result, error) {
	extractor := h.Extractors.Get(ds.Kind)
	if extractor == nil {
		return nil, unveil.Errorf(unveil.EINVALID, "no extractor for dataset kind %q", ds.Kind)
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	meta := unveil.NewMeta(now())
	logger := h.logger().With("dataset", ds.Name, "date", meta.Date)

	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages := make([]page, len(ds.Sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, src := range ds.Sources {
		g.Go(func() error {
			p, err := h.harvestSource(gctx, ds.Name, meta.Date, src, extractor, logger.With("source", src.Name))
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name, err)
			}
			pages[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]unveil.Record, 0)
	run := &unveil.Run{
		Dataset:   ds.Name,
		Date:      meta.Date,
		CreatedAt: meta.CreatedAt,
	}
	for _, p := range pages {
		records = append(records, p.records...)
		run.Pages = append(run.Pages, p.info)
	}
	run.Records = len(records)

	if err := h.publish(ctx, ds.Name, unveil.Batch{Meta: meta, Data: records}); err != nil {
		return nil, err
	}

	if err := h.Runs.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	if err := h.Records.CreateRecords(ctx, run.ID, records); err != nil {
		return nil, fmt.Errorf("create records: %w", err)
	}

	logger.Info("harvest", "run", run.ID, "pages", len(run.Pages), "records", run.Records)
	return &Result{Run: run, Records: records}, nil
}

func (h *Harvester) harvestSource(ctx context.Context, dataset, date string, src unveil.Source, extractor unveil.Extractor, logger *slog.Logger) (page, error) {
	if h.Limiter != nil {
		u, err := url.Parse(src.URL)
		if err != nil {
			return page{}, unveil.Errorf(unveil.EINVALID, "invalid source URL %q", src.URL)
		}
		if err := h.Limiter.Wait(ctx, u.Host); err != nil {
			return page{}, err
		}
	}

	data, err := FetchWithRetry(ctx, src.URL, h.Fetcher, logger, h.RetryDelays)
	if err != nil {
		return page{}, err
	}

	if err := h.Artifacts.Put(ctx, unveil.RawKey(dataset, date, src.Name), data); err != nil {
		return page{}, fmt.Errorf("store raw page: %w", err)
	}

	root, err := h.Parser.Parse(bytes.NewReader(data))
	if err != nil {
		return page{}, fmt.Errorf("parse: %w", err)
	}

	selector := src.Selector
	if selector == "" {
		selector = src.Name
	}
	seq, err := extractor.Extract(root, selector)
	if err != nil {
		return page{}, err
	}
	records := slices.Collect(seq)

	return page{
		info: unveil.RunPage{
			Source:      src.Name,
			URL:         src.URL,
			ContentHash: ComputeHash(data),
			Bytes:       len(data),
			Records:     len(records),
		},
		records: records,
	}, nil
}

// publish writes the batch to the dated archive and the latest pointer.
func (h *Harvester) publish(ctx context.Context, dataset string, batch unveil.Batch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}
	for _, key := range []string{unveil.ArchiveKey(dataset, batch.Meta.Date), unveil.LatestKey(dataset)} {
		if err := h.Artifacts.Put(ctx, key, data); err != nil {
			return fmt.Errorf("publish batch: %w", err)
		}
	}
	return nil
}

func (h *Harvester) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return h.Logger
}

// ComputeHash returns the hex xxhash digest of data.
func ComputeHash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
