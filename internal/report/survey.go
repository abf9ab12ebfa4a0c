// Package report runs headless Life soups in parallel and summarises how they
// evolve.
package report

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"life-ca/internal/sims/life"
)

// ErrInvalidOptions is wrapped by Options.Validate.
var ErrInvalidOptions = errors.New("invalid survey options")

// Options describes one survey.
type Options struct {
	Rows        int
	Cols        int
	Density     float64
	Generations int
	Workers     int
	Bounded     bool
}

// DefaultOptions returns a survey over the default 60x90 region.
func DefaultOptions() Options {
	return Options{
		Rows:        60,
		Cols:        90,
		Density:     0.25,
		Generations: 500,
		Workers:     runtime.NumCPU(),
	}
}

// Validate reports the first out-of-range option.
func (o Options) Validate() error {
	switch {
	case o.Rows <= 0 || o.Cols <= 0:
		return fmt.Errorf("region %dx%d: %w", o.Rows, o.Cols, ErrInvalidOptions)
	case o.Density < 0 || o.Density > 1:
		return fmt.Errorf("density %v: %w", o.Density, ErrInvalidOptions)
	case o.Generations < 0:
		return fmt.Errorf("generations %d: %w", o.Generations, ErrInvalidOptions)
	}
	return nil
}

// Result is the outcome of a single soup.
type Result struct {
	Seed    int64
	Initial int
	Final   int
	Peak    int
	PeakGen int
	// RepeatAt is the first generation whose state matched an earlier one,
	// or -1. Period is the distance back to that earlier generation.
	RepeatAt int
	Period   int
	History  []int
	Cells    life.LiveSet
}

// Settled reports whether the soup reached a still life or oscillator.
func (r Result) Settled() bool { return r.RepeatAt >= 0 }

// Seeds returns n consecutive seeds starting at base.
func Seeds(base int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = base + int64(i)
	}
	return out
}

// Run randomizes a grid from seed and advances it opts.Generations times.
func Run(opts Options, seed int64) Result {
	g := life.New(life.Config{Rows: opts.Rows, Cols: opts.Cols, Seed: seed, Bounded: opts.Bounded})
	g.Randomize(opts.Density)

	res := Result{Seed: seed, RepeatAt: -1, History: make([]int, 0, opts.Generations+1)}
	seen := make(map[uint64]int)
	record := func() {
		pop := g.Population()
		gen := g.Generation()
		res.History = append(res.History, pop)
		if pop > res.Peak {
			res.Peak, res.PeakGen = pop, gen
		}
		if res.RepeatAt >= 0 {
			return
		}
		fp := life.Fingerprint(g.Cells())
		if prev, ok := seen[fp]; ok {
			res.RepeatAt, res.Period = gen, gen-prev
			return
		}
		seen[fp] = gen
	}

	record()
	for range opts.Generations {
		g.Step()
		record()
	}
	res.Initial = res.History[0]
	res.Final = g.Population()
	res.Cells = g.Cells().Clone()
	return res
}

// Survey runs every seed on a pool of opts.Workers goroutines. Results are
// returned in seed order. Cancelling ctx stops handing out new seeds.
func Survey(ctx context.Context, opts Options, seeds []int64) ([]Result, error) {
	type job struct {
		idx  int
		seed int64
	}
	jobs := make(chan job)
	results := make([]Result, len(seeds))

	var wg sync.WaitGroup
	for range max(opts.Workers, 1) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.idx] = Run(opts, j.seed)
			}
		}()
	}

	var err error
feed:
	for i, seed := range seeds {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- job{idx: i, seed: seed}:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates a survey.
type Summary struct {
	Runs        int
	Extinct     int
	Settled     int
	MeanFinal   float64
	MaxPeak     int
	MaxPeakSeed int64
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for i, r := range results {
		total += r.Final
		if r.Final == 0 {
			s.Extinct++
		}
		if r.Settled() {
			s.Settled++
		}
		if i == 0 || r.Peak > s.MaxPeak {
			s.MaxPeak, s.MaxPeakSeed = r.Peak, r.Seed
		}
	}
	s.MeanFinal = float64(total) / float64(len(results))
	return s
}

// MeanHistory averages population per generation across results. Shorter
// histories only contribute to the generations they cover.
func MeanHistory(results []Result) []float64 {
	n := 0
	for _, r := range results {
		n = max(n, len(r.History))
	}
	sum := make([]float64, n)
	count := make([]int, n)
	for _, r := range results {
		for i, v := range r.History {
			sum[i] += float64(v)
			count[i]++
		}
	}
	for i := range sum {
		sum[i] /= float64(count[i])
	}
	return sum
}
