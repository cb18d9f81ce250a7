package sheetbatch

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// writeLimiter paces spreadsheet create and batchUpdate calls to stay under the
// Sheets API write quota (100 write requests per 100 seconds per user). Reads
// are metered separately by the API and are not limited here.
type writeLimiter struct {
	clock  clockwork.Clock
	limit  int
	window time.Duration
	calls  []time.Time
}

func newWriteLimiter(limit int, window time.Duration, clock clockwork.Clock) *writeLimiter {
	return &writeLimiter{
		clock:  clock,
		limit:  limit,
		window: window,
	}
}

// wait blocks until issuing one more write call would not exceed the quota
// window. It returns early with the context error if ctx is cancelled.
func (l *writeLimiter) wait(ctx context.Context) error {
	if l == nil || l.limit <= 0 {
		return nil
	}

	now := l.clock.Now()
	l.prune(now)

	if len(l.calls) < l.limit {
		return nil
	}

	delay := l.calls[len(l.calls)-l.limit].Add(l.window).Sub(now)
	if delay <= 0 {
		return nil
	}

	select {
	case <-l.clock.After(delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	l.prune(l.clock.Now())

	return nil
}

// record registers a completed write call. Callers invoke it only after the
// remote call succeeds - a failed call consumed no quota worth protecting.
func (l *writeLimiter) record() {
	if l == nil || l.limit <= 0 {
		return
	}

	l.calls = append(l.calls, l.clock.Now())
}

func (l *writeLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)

	i := 0
	for i < len(l.calls) && !l.calls[i].After(cutoff) {
		i++
	}

	l.calls = l.calls[i:]
}
