package heredity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Options tunes how Infer spends resources. None of them change the result.
type Options struct {
	// Workers is how many chunks are scored concurrently. Zero or less means
	// one per CPU.
	Workers int

	// MaxPeople rejects larger pedigrees with ErrPedigreeTooLarge before any
	// work is done. Zero disables the guard.
	MaxPeople int

	// Chunks is how many contiguous ranges of OneGene patterns the world
	// space is split into. Each chunk is accumulated privately and the
	// partial sums are merged in chunk order, so a fixed Chunks gives
	// bit-identical results for any Workers.
	Chunks int
}

// DefaultOptions returns the options used by the commands.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.NumCPU(),
		MaxPeople: 20,
		Chunks:    64,
	}
}

// ctxCheckInterval is how many worlds a worker scores between checks for
// cancellation.
const ctxCheckInterval = 1 << 16

// Infer computes the exact posterior gene count and trait distributions of
// every person in the pedigree given its trait evidence.
func Infer(ctx context.Context, p *Pedigree, t Tables, opts Options) (Result, error) {
	start := time.Now()
	result, err := infer(ctx, p, t, opts)

	inferenceRuns.WithLabelValues(outcome(err)).Inc()
	inferenceWorlds.Add(float64(result.Worlds))
	inferenceDuration.Observe(time.Since(start).Seconds())
	pedigreeSize.Observe(float64(p.Len()))

	log.WithFields(log.Fields{
		"people":  p.Len(),
		"worlds":  result.Worlds,
		"elapsed": time.Since(start),
		"outcome": outcome(err),
	}).Debug("Inference finished")

	return result, err
}

func infer(ctx context.Context, p *Pedigree, t Tables, opts Options) (Result, error) {
	if err := t.Validate(); err != nil {
		return Result{}, err
	}
	if opts.MaxPeople > 0 && p.Len() > opts.MaxPeople {
		return Result{}, fmt.Errorf("%w: %d people, limit is %d", ErrPedigreeTooLarge, p.Len(), opts.MaxPeople)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ranges := partition(p.Len(), opts.Chunks)

	log.WithFields(log.Fields{
		"people":     p.Len(),
		"unobserved": p.Unobserved(),
		"worlds":     WorldCount(p.Len(), p.Unobserved()),
		"chunks":     len(ranges),
		"workers":    workers,
	}).Debug("Starting exact inference")

	partials := make([]*Accumulator, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			acc, err := accumulateRange(gctx, p, t, r)
			partials[i] = acc
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	total := NewAccumulator(p)
	for _, partial := range partials {
		total.Merge(partial)
	}

	return total.Normalize()
}

// accumulateRange scores every evidence-consistent world whose OneGene
// pattern falls in r into a fresh accumulator.
func accumulateRange(ctx context.Context, p *Pedigree, t Tables, r oneGeneRange) (*Accumulator, error) {
	acc := NewAccumulator(p)
	if err := ctx.Err(); err != nil {
		return acc, err
	}

	s := newScorer(p, t)
	wr := p.newWorldReader(r.start, r.end, false)
	for {
		w, ok := wr.Read()
		if !ok {
			break
		}
		acc.Add(w, s.score(w))

		if wr.WorldsSeen%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return acc, err
			}
		}
	}

	return acc, nil
}

type oneGeneRange struct {
	start, end Subset
}

// partition splits the 2^n OneGene patterns into at most chunks contiguous,
// non-empty ranges that together cover all of them.
func partition(n, chunks int) []oneGeneRange {
	span := uint64(1) << uint(n)
	if chunks <= 0 {
		chunks = 1
	}
	if uint64(chunks) > span {
		chunks = int(span)
	}

	step, rem := span/uint64(chunks), span%uint64(chunks)
	ranges := make([]oneGeneRange, chunks)
	var start uint64
	for k := range ranges {
		size := step
		if uint64(k) < rem {
			size++
		}
		ranges[k] = oneGeneRange{start: Subset(start), end: Subset(start + size)}
		start += size
	}

	return ranges
}

func outcome(err error) string {
	var inferenceErr *InferenceError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &inferenceErr):
		return "degenerate"
	case errors.Is(err, ErrPedigreeTooLarge):
		return "too_large"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}
