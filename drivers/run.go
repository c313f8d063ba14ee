package drivers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/reusee/rulegen/logs"
	"github.com/reusee/rulegen/rules"
	"github.com/reusee/rulegen/syncs"
)

type Options struct {
	Start       uint64
	Concurrency int
	Until       Until
}

var ErrNoUntil = errors.New("no stop condition")

const batchSize = 256

// Run plays back the programs for Start, Start+1, ... to w, in order, until opts.Until holds.
// It returns the last n written.
type Run func(ctx context.Context, rs rules.Rules, opts Options, w io.Writer) (last uint64, err error)

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context, rs rules.Rules, opts Options, w io.Writer) (last uint64, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		if opts.Until == nil {
			return 0, ErrNoUntil
		}
		concurrency := max(opts.Concurrency, 1)
		logger.InfoContext(ctx, "run",
			"rules", len(rs),
			"start", opts.Start,
			"concurrency", concurrency,
		)

		sem := syncs.NewSemaphore(concurrency)
		buffers := make([]bytes.Buffer, batchSize)
		n := opts.Start
		lines := 0
		for {
			if err := ctx.Err(); err != nil {
				return last, err
			}

			// render a batch
			count := uint64(batchSize)
			if remain := math.MaxUint64 - n; remain < count-1 {
				count = remain + 1
			}
			var wg sync.WaitGroup
			for i := range count {
				buf := &buffers[i]
				buf.Reset()
				sem.Go(&wg, func() {
					// bytes.Buffer never fails
					_ = rules.Generate(rs, n+i).Playback(buf)
				})
			}
			wg.Wait()
			logger.DebugContext(ctx, "batch", "from", n, "count", count)

			// write in order
			for i := range count {
				if _, err := w.Write(buffers[i].Bytes()); err != nil {
					return last, err
				}
				last = n + i
				lines++
				if opts.Until(last) {
					logger.InfoContext(ctx, "done", "last", last, "lines", lines)
					return last, nil
				}
			}

			if n+count-1 == math.MaxUint64 {
				logger.WarnContext(ctx, "integer range exhausted", "last", last)
				return last, nil
			}
			n += count
		}
	}
}
