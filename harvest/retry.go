package harvest

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/unveil"
)

// FetchWithRetry fetches url, retrying once per entry of delays after
// waiting that long. It returns the last error once every attempt fails.
// A nil logger disables retry logging.
func FetchWithRetry(ctx context.Context, url string, fetcher unveil.Fetcher, logger *slog.Logger, delays []time.Duration) ([]byte, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		data, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return data, nil
		}
		lastErr = err

		// A missing page stays missing.
		if unveil.ErrorCode(err) == unveil.ENOTFOUND {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if logger != nil {
			logger.Warn("retry fetch", "url", url, "attempt", attempt+2, "delay", delays[attempt], "err", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
