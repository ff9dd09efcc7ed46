package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gogama/spatial/internal/config"
	"github.com/gogama/spatial/wireframe"
)

// heightPalette colors node boxes by height, starting at the leaves.
var heightPalette = []color.Attribute{
	color.FgRed,
	color.FgBlue,
	color.FgWhite,
	color.FgGreen,
	color.FgMagenta,
	color.FgCyan,
	color.FgYellow,
	color.FgHiBlack,
	color.FgBlack,
}

func heightColor(h int, enabled bool) *color.Color {
	c := color.New(heightPalette[(h-1)%len(heightPalette)])
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Print writes a human readable account of the run to w. Node boxes
// are colored by height if the configuration asks for color.
func (r *Report) Print(w io.Writer) error {
	cfg := r.Config
	p := &printer{w: w}

	area := cfg.Targets.Area
	p.printf("targets: %d on %dx%d cells (seed %d)\n", len(r.Targets), area.Width, area.Height, cfg.Seed)
	how := "insertion"
	if cfg.Index.Bulk {
		how = "bulk load (" + cfg.Index.Order + ")"
	}
	p.printf("index:   %s built by %s in %s\n", r.Index, how, r.Build)

	if cfg.Query.Mode == config.ModeRange {
		p.printf("query:   range %s\n", r.Window)
	} else {
		p.printf("query:   knn k=%d at (%g,%g)\n", cfg.Query.K, r.At.X, r.At.Y)
	}
	p.printf("rtree:   %d results in %s: %s\n", len(r.Results), r.Search, join(r.Results))
	verdict := "agree"
	if !r.Agree() {
		verdict = "DISAGREE"
	}
	p.printf("naive:   %d results in %s, %s\n", len(r.Naive), r.Scan, verdict)

	f := wireframe.Capture(r.Index, captureHeight(cfg.Output.Height))
	p.printf("nodes:   %d\n", len(f.Nodes))
	for _, n := range f.Nodes {
		indent := strings.Repeat("  ", r.Index.Height()-n.Height+1)
		p.colorf(heightColor(n.Height, cfg.Output.Color), "%sh%d %s\n", indent, n.Height, n.Box)
	}

	if r.Frames > 0 {
		p.printf("wrote %d wireframe frame(s) to %s\n", r.Frames, cfg.Output.Wireframe)
	}
	return p.err
}

func join(targets []*Target) string {
	s := make([]string, len(targets))
	for i := range targets {
		s[i] = targets[i].String()
	}
	return strings.Join(s, " ")
}

// printer remembers the first write error so that callers need only
// check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, a...)
	}
}

func (p *printer) colorf(c *color.Color, format string, a ...interface{}) {
	if p.err == nil {
		_, p.err = c.Fprintf(p.w, format, a...)
	}
}
