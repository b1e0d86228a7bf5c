package reconstruct

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Thandava3114/Catalog-Answers/pkg/share"
)

// Outcome is the result of one request of a Batch.
type Outcome struct {
	// Index of the request in the batch.
	Index  int
	Result *Result
	Err    error
}

// Batch reconstructs every request, running at most limit reconstructions at
// once (no limit if limit ≤ 0). Each reconstruction is independent: a failure
// does not affect the others. Once ctx is done, requests that have not started
// yet fail with ctx.Err().
//
// Outcomes are returned in the order of reqs.
func Batch(ctx context.Context, reqs []*share.Request, limit int, opts ...Option) []Outcome {
	outcomes := make([]Outcome, len(reqs))
	var errGroup errgroup.Group
	if limit > 0 {
		errGroup.SetLimit(limit)
	}
	for i := range reqs {
		idx := i
		if err := ctx.Err(); err != nil {
			outcomes[idx] = Outcome{Index: idx, Err: err}
			continue
		}
		errGroup.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[idx] = Outcome{Index: idx, Err: err}
				return nil
			}
			res, err := Reconstruct(reqs[idx], opts...)
			outcomes[idx] = Outcome{Index: idx, Result: res, Err: err}
			return nil
		})
	}
	_ = errGroup.Wait()
	return outcomes
}
