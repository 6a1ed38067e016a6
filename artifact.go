package unveil

import (
	"context"
	"time"
)

// BatchDateLayout formats the batch date of a run.
const BatchDateLayout = "2006-01-02"

// Meta describes the run that produced a batch.
type Meta struct {
	CreatedAt time.Time `json:"created_at"`
	Date      string    `json:"date"`
}

// NewMeta returns the metadata for a run started at now.
func NewMeta(now time.Time) Meta {
	now = now.UTC()
	return Meta{
		CreatedAt: now,
		Date:      now.Format(BatchDateLayout),
	}
}

// Batch is the processed artifact of one dataset run.
type Batch struct {
	Meta Meta     `json:"meta"`
	Data []Record `json:"data"`
}

// ArtifactStore persists raw and processed artifacts under slash-separated keys.
type ArtifactStore interface {
	// Put stores data under key, replacing any previous artifact.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns the artifact stored under key.
	// Returns ENOTFOUND if no artifact exists.
	Get(ctx context.Context, key string) ([]byte, error)
}

// RawKey returns the key of a source's raw page for a batch date.
func RawKey(dataset, date, source string) string {
	return dataset + "/raw/" + date + "_" + source + ".html.gz"
}

// ArchiveKey returns the key of a dataset's processed batch for a date.
func ArchiveKey(dataset, date string) string {
	return dataset + "/archive/" + date + ".json.gz"
}

// LatestKey returns the key of a dataset's most recent processed batch.
func LatestKey(dataset string) string {
	return dataset + "/latest.json.gz"
}
