// Package driver projects batches of classes in parallel.
package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"reset-bridger/internal/cache"
	"reset-bridger/internal/diagnostic"
	"reset-bridger/internal/model"
	"reset-bridger/internal/projection"
)

// Options configures Run.
type Options struct {
	// Jobs bounds the number of concurrent projections. Zero or less means
	// GOMAXPROCS.
	Jobs int
	// Filter selects the reported classes. Superclasses of selected classes
	// are projected even when the filter rejects them. Nil selects all.
	Filter *Filter
	// Cache memoizes projections across runs. Nil disables caching.
	Cache *cache.Cache
	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// ClassResult is the projection of one input class.
type ClassResult struct {
	Input  *model.ClassInterface
	Result *projection.Result
	Cached bool
}

// Report is the outcome of a Run.
type Report struct {
	// Results holds the selected classes in input order.
	Results []ClassResult
	// Diagnostics concatenates the diagnostics of Results in the same order.
	Diagnostics diagnostic.Diagnostics
	// Skipped counts input classes rejected by the filter.
	Skipped int
}

// Classes returns the projected classes in input order.
func (r *Report) Classes() []*model.ClassInterface {
	out := make([]*model.ClassInterface, len(r.Results))
	for i := range r.Results {
		out[i] = r.Results[i].Result.Class
	}

	return out
}

// node is one class to project, possibly a superclass outside the input.
type node struct {
	class *model.ClassInterface
	super int // index of the superclass node, or -1
	depth int
}

type run struct {
	opts   Options
	log    *slog.Logger
	nodes  []node
	index  map[*model.ClassInterface]int
	result []ClassResult
}

// Run projects every selected class in classes, each in the direction its
// convention implies. Each superclass is projected once, before its
// subclasses, and shared by them. The output order equals the input order
// regardless of Jobs.
func Run(ctx context.Context, classes []*model.ClassInterface, opts Options) (*Report, error) {
	r := &run{
		opts:  opts,
		log:   opts.Logger,
		index: make(map[*model.ClassInterface]int),
	}
	if r.log == nil {
		r.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	report := &Report{}

	var selected []int

	for i, c := range classes {
		if c == nil {
			return nil, fmt.Errorf("driver: %w", model.Malformed("", "class %d is nil", i))
		}

		if !opts.Filter.Match(c.Name) {
			report.Skipped++
			r.log.Debug("class skipped by filter", "class", c.Name)

			continue
		}

		idx, err := r.add(c)
		if err != nil {
			return nil, err
		}

		selected = append(selected, idx)
	}

	r.result = make([]ClassResult, len(r.nodes))

	for _, level := range r.levels() {
		if err := r.projectLevel(ctx, level); err != nil {
			return nil, err
		}
	}

	report.Results = make([]ClassResult, 0, len(selected))
	for _, idx := range selected {
		res := r.result[idx]
		report.Results = append(report.Results, res)
		report.Diagnostics.Merge(res.Result.Diagnostics)
	}

	return report, nil
}

// add registers c and its superclass chain, returning the node index of c.
func (r *run) add(c *model.ClassInterface) (int, error) {
	if idx, ok := r.index[c]; ok {
		return idx, nil
	}

	var chain []*model.ClassInterface

	seen := make(map[*model.ClassInterface]bool)
	for cur := c; cur != nil; cur = cur.Superclass {
		if _, ok := r.index[cur]; ok {
			break
		}

		if seen[cur] {
			return 0, fmt.Errorf("driver: %w", model.Malformed(c.Name, "inheritance cycle through %s", cur.Name))
		}

		seen[cur] = true
		chain = append(chain, cur)
	}

	// Register ancestors first so every super index already exists.
	for i := len(chain) - 1; i >= 0; i-- {
		cur := chain[i]
		n := node{class: cur, super: -1}

		if cur.Superclass != nil {
			n.super = r.index[cur.Superclass]
			n.depth = r.nodes[n.super].depth + 1
		}

		r.index[cur] = len(r.nodes)
		r.nodes = append(r.nodes, n)
	}

	return r.index[c], nil
}

// levels groups node indices by inheritance depth.
func (r *run) levels() [][]int {
	var out [][]int

	for i, n := range r.nodes {
		for len(out) <= n.depth {
			out = append(out, nil)
		}

		out[n.depth] = append(out[n.depth], i)
	}

	return out
}

func (r *run) projectLevel(ctx context.Context, level []int) error {
	jobs := r.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(level)))

	for _, idx := range level {
		if err := gctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := r.project(idx)
			if err != nil {
				return err
			}

			// idx is unique per goroutine
			r.result[idx] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func (r *run) project(idx int) (ClassResult, error) {
	n := r.nodes[idx]

	var super *model.ClassInterface
	if n.super >= 0 {
		super = r.result[n.super].Result.Class
	}

	out := ClassResult{Input: n.class}

	var key cache.Digest

	if r.opts.Cache != nil {
		var err error

		key, err = cache.KeyFor(n.class)
		if err != nil {
			return out, err
		}

		res, ok, err := r.opts.Cache.Get(key, super)
		if err != nil {
			r.log.Debug("cache read failed", "class", n.class.Name, "error", err)
		}

		if ok {
			r.log.Debug("cache hit", "class", n.class.Name, "key", key.String())

			out.Result = res
			out.Cached = true

			return out, nil
		}
	}

	res, err := projection.For(n.class, projection.WithSuperclass(super))
	if err != nil {
		return out, err
	}

	r.log.Debug("class projected",
		"class", n.class.Name,
		"from", n.class.Convention.String(),
		"errors", len(res.Diagnostics.Errors()),
		"warnings", len(res.Diagnostics.Warnings()))

	if r.opts.Cache != nil {
		if err := r.opts.Cache.Put(key, res); err != nil {
			r.log.Debug("cache write failed", "class", n.class.Name, "error", err)
		}
	}

	out.Result = res

	return out, nil
}
