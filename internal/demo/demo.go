// Package demo runs the rtreedemo scenario: scatter targets over a
// grid, index them, query the index and compare the answer and its
// timing against a linear scan.
package demo

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/gogama/spatial/internal/config"
	"github.com/gogama/spatial/rtree"
	"github.com/gogama/spatial/wireframe"
)

// Report describes the outcome of one demo run.
type Report struct {
	Config  *config.Config
	Targets []*Target
	Index   *rtree.Index[*Target]
	// Build is the time spent building the index, excluding any
	// wireframe capture.
	Build time.Duration

	// Window is the range query box. It is only set in range mode.
	Window rtree.Box
	// At is the knn query point. It is only set in knn mode.
	At rtree.Point

	Results []*Target
	Search  time.Duration
	Naive   []*Target
	Scan    time.Duration

	// Frames is the number of wireframe frames written.
	Frames int
}

// Run executes the scenario described by cfg, which must be valid.
func Run(cfg *config.Config) (*Report, error) {
	order, err := rtree.ParseSortOrder(cfg.Index.Order)
	if err != nil {
		return nil, err
	}
	index, err := rtree.New[*Target](cfg.Index.MaxEntries, cfg.Index.MinEntries, rtree.WithBulkOrder(order))
	if err != nil {
		return nil, err
	}

	r := &Report{
		Config:  cfg,
		Targets: Scatter(rand.New(rand.NewSource(cfg.Seed)), cfg.Targets.Area, cfg.Targets.Count),
		Index:   index,
	}

	var w *wireframe.Writer
	if cfg.Output.Wireframe != "" {
		f, err := os.Create(cfg.Output.Wireframe)
		if err != nil {
			return nil, fmt.Errorf("failed to create wireframe file: %w", err)
		}
		w = wireframe.NewWriter(f)
		defer func() {
			_ = w.Close()
		}()
	}

	if err = r.build(w); err != nil {
		return nil, err
	}
	if w != nil && (cfg.Index.Bulk || !cfg.Output.EveryInsert) {
		if err = r.capture(w); err != nil {
			return nil, err
		}
	}
	if w != nil {
		if err = w.Close(); err != nil {
			return nil, fmt.Errorf("failed to close wireframe file: %w", err)
		}
	}

	r.query()
	return r, nil
}

func (r *Report) build(w *wireframe.Writer) error {
	cfg := r.Config
	if cfg.Index.Bulk {
		start := time.Now()
		err := r.Index.BulkLoad(r.Targets)
		r.Build = time.Since(start)
		return err
	}

	for _, t := range r.Targets {
		start := time.Now()
		err := r.Index.Insert(t)
		r.Build += time.Since(start)
		if err != nil {
			return err
		}
		if w != nil && cfg.Output.EveryInsert {
			if err = r.capture(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Report) capture(w *wireframe.Writer) error {
	f := wireframe.Capture(r.Index, captureHeight(r.Config.Output.Height))
	if _, err := w.Write(&f); err != nil {
		return err
	}
	r.Frames++
	return nil
}

// captureHeight maps the configured height filter, where zero means
// every height, onto the convention of wireframe.Capture.
func captureHeight(h int) int {
	if h == 0 {
		return -1
	}
	return h
}

func (r *Report) query() {
	q := r.Config.Query
	from := cellCenter(q.From[0], q.From[1])

	switch q.Mode {
	case config.ModeRange:
		to := cellCenter(q.To[0], q.To[1])
		r.Window = rtree.Box{XMin: from.X, YMin: from.Y, XMax: from.X, YMax: from.Y}
		r.Window.ExpandXY(to.X, to.Y)

		start := time.Now()
		r.Results = r.Index.Search(r.Window)
		r.Search = time.Since(start)

		start = time.Now()
		r.Naive = naiveRange(r.Targets, r.Window)
		r.Scan = time.Since(start)
	default:
		r.At = from

		start := time.Now()
		r.Results = r.Index.SearchKNN(r.At, q.K)
		r.Search = time.Since(start)

		start = time.Now()
		r.Naive = naiveKNN(r.Targets, r.At, q.K)
		r.Scan = time.Since(start)
	}
}

// Agree reports whether the index and the linear scan gave the same
// answer. Range answers must hold the same targets. Knn answers must
// hold targets at the same distances, since equidistant targets may
// come back in a different order or be swapped for one another.
func (r *Report) Agree() bool {
	if len(r.Results) != len(r.Naive) {
		return false
	}
	if r.Config.Query.Mode == config.ModeRange {
		a, b := ids(r.Results), ids(r.Naive)
		sort.Ints(a)
		sort.Ints(b)
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	for i := range r.Results {
		rb, nb := r.Results[i].Bounds(), r.Naive[i].Bounds()
		if rb.SqrDistance(r.At) != nb.SqrDistance(r.At) {
			return false
		}
	}
	return true
}

func ids(targets []*Target) []int {
	r := make([]int, len(targets))
	for i := range targets {
		r[i] = targets[i].ID
	}
	return r
}
