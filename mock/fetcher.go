package mock

import (
	"context"

	"github.com/fwojciec/unveil"
)

var _ unveil.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of unveil.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

var _ unveil.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of unveil.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
