package crack

import (
	"caesar/internal/ctxlog"
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of cracking one line of a batch.
type Outcome struct {
	Ciphertext string
	Result     Result
	OK         bool
}

// Batch cracks each line independently, at most jobs at a time.
// Outcomes are in input order. The first error cancels the remaining lines.
func Batch(ctx context.Context, c Cracker, lines []string, jobs int) ([]Outcome, error) {
	if jobs <= 0 {
		jobs = 1
	}

	out := make([]Outcome, len(lines))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for i, line := range lines {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			lctx := ctxlog.With(egCtx, "line", i+1)
			res, ok, err := c.Crack(lctx, line)
			if err != nil {
				return err
			}

			out[i] = Outcome{Ciphertext: line, Result: res, OK: ok}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
