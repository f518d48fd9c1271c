package controller

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nao1215/phishcheck/internal/client"
	"github.com/nao1215/phishcheck/internal/view"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of classifying one URL in CheckAll.
type BatchResult struct {
	// URL is the candidate URL as given.
	URL string

	// State is the rendered result view. It is only meaningful when Err is nil.
	State view.State

	// Err is the classification error, if any.
	Err error
}

// CheckAll classifies several URLs concurrently and renders each verdict
// into its own view state. Results are returned in the order of urls.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// A failed classification is recorded in its BatchResult and does not stop
// the others; only context cancellation is returned as an error.
//
// CheckAll does not touch the session view, so it can run alongside CheckURL.
func (c *Controller) CheckAll(ctx context.Context, urls []string) ([]BatchResult, error) {
	c.logger.Info("starting batch check",
		"total_urls", len(urls),
		"concurrency", c.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	results := make([]BatchResult, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, candidate := range urls {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				results[i] = BatchResult{URL: candidate, Err: ctx.Err()}
				return ctx.Err()
			default:
			}

			requestID := uuid.NewString()
			verdict, err := c.service.Classify(client.WithRequestID(ctx, requestID), candidate)
			if err != nil {
				c.logger.Warn("classification failed",
					"url", candidate,
					"request_id", requestID,
					"error", err,
				)
				// Don't return error to errgroup - we want to continue other checks
				results[i] = BatchResult{URL: candidate, Err: err}
				return nil
			}

			s := view.NewState()
			s.Input = candidate
			results[i] = BatchResult{
				URL:   candidate,
				State: view.RenderVerdict(s, *verdict, c.cache.IsBlocked),
			}
			return nil
		})
	}

	err := g.Wait()

	c.logger.Info("batch check complete",
		"total_urls", len(urls),
		"elapsed", time.Since(startTime),
	)

	return results, err
}
