package demo

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/gogama/spatial/internal/config"
	"github.com/gogama/spatial/rtree"
)

// Target is a point of interest placed at the center of one grid cell.
type Target struct {
	ID int
	// X and Y are the cell center.
	X, Y float64
}

// Bounds returns the unit box of the target's cell.
func (t *Target) Bounds() rtree.Box {
	return rtree.CenteredBox(t.X, t.Y, 1, 1)
}

func (t *Target) String() string {
	return fmt.Sprintf("#%d(%g,%g)", t.ID, t.X, t.Y)
}

// cellCenter returns the center of grid cell (x, y).
func cellCenter(x, y int) rtree.Point {
	return rtree.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Scatter places targets on random cells of area. It makes n
// placement attempts and drops any attempt landing on a cell which is
// already taken, so it may return fewer than n targets. The targets
// are sorted by distance from the origin, nearest first, and numbered
// in that order.
func Scatter(rnd *rand.Rand, area config.AreaConfig, n int) []*Target {
	taken := make(map[int]bool)
	targets := make([]*Target, 0, n)
	for i := 0; i < n; i++ {
		x := area.XMin + rnd.Intn(area.Width)
		y := area.YMin + rnd.Intn(area.Height)
		cell := (x-area.XMin)*area.Height + (y - area.YMin)
		if taken[cell] {
			continue
		}
		taken[cell] = true
		c := cellCenter(x, y)
		targets = append(targets, &Target{X: c.X, Y: c.Y})
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return sqrNorm(targets[i]) < sqrNorm(targets[j])
	})
	for i := range targets {
		targets[i].ID = i
	}
	return targets
}

func sqrNorm(t *Target) float64 {
	return t.X*t.X + t.Y*t.Y
}
