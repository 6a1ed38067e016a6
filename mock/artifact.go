package mock

import (
	"context"

	"github.com/fwojciec/unveil"
)

var _ unveil.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of unveil.ArtifactStore.
type ArtifactStore struct {
	PutFn func(ctx context.Context, key string, data []byte) error
	GetFn func(ctx context.Context, key string) ([]byte, error)
}

func (s *ArtifactStore) Put(ctx context.Context, key string, data []byte) error {
	return s.PutFn(ctx, key, data)
}

func (s *ArtifactStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.GetFn(ctx, key)
}
