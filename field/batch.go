package field

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Input is one (tag, content) pair of a message body
type Input struct {
	Tag     string
	Content string
}

// Result is the outcome of decoding one Input
type Result struct {
	Input
	Values Values
	Err    error
}

// DecodeBatch decodes inputs on up to workers goroutines. Results keep the
// order of inputs. A failing field never stops the batch; cancelling ctx
// stops scheduling and marks the remaining results with ctx.Err().
func DecodeBatch(ctx context.Context, dec *Decoder, inputs []Input, workers int) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(inputs))
	for i, in := range inputs {
		results[i].Input = in
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range inputs {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(inputs); j++ {
				results[j].Err = err
			}
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Values, results[i].Err = dec.Decode(inputs[i].Tag, inputs[i].Content)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
