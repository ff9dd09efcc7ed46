// Package config provides the configuration of the rtreedemo command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogama/spatial/rtree"
)

// Query modes.
const (
	ModeRange = "range"
	ModeKNN   = "knn"
)

// Config represents the complete demo configuration.
type Config struct {
	// Seed seeds the random placement of targets.
	Seed    int64        `yaml:"seed"`
	Targets TargetConfig `yaml:"targets"`
	Index   IndexConfig  `yaml:"index"`
	Query   QueryConfig  `yaml:"query"`
	Output  OutputConfig `yaml:"output"`
}

// TargetConfig configures the scatter of targets over a grid of unit
// cells.
type TargetConfig struct {
	// Count is the number of placement attempts. Attempts which land
	// on an occupied cell are dropped, so fewer targets may result.
	Count int `yaml:"count"`
	// Area is the cell grid targets are placed on.
	Area AreaConfig `yaml:"area"`
}

// AreaConfig is a rectangle of grid cells.
type AreaConfig struct {
	XMin   int `yaml:"x_min"`
	YMin   int `yaml:"y_min"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Contains reports whether the cell (x, y) lies in the area.
func (a AreaConfig) Contains(x, y int) bool {
	return x >= a.XMin && x < a.XMin+a.Width && y >= a.YMin && y < a.YMin+a.Height
}

// IndexConfig configures the R-Tree.
type IndexConfig struct {
	MaxEntries int `yaml:"max_entries"`
	MinEntries int `yaml:"min_entries"`
	// Bulk builds the index with one bulk load instead of inserting
	// targets one at a time.
	Bulk bool `yaml:"bulk"`
	// Order is the bulk load sort order, "minxy" or "hilbert".
	Order string `yaml:"order"`
}

// QueryConfig configures the query run against the index.
type QueryConfig struct {
	// Mode is "range" or "knn".
	Mode string `yaml:"mode"`
	// K is the number of neighbors a knn query asks for.
	K int `yaml:"k"`
	// From is the cell a knn query is centered on, and one corner of
	// a range query.
	From [2]int `yaml:"from"`
	// To is the opposite corner of a range query.
	To [2]int `yaml:"to"`
}

// OutputConfig configures what the demo reports.
type OutputConfig struct {
	// Height restricts the node listing and wireframe capture to
	// nodes at one height. Zero means all heights.
	Height int `yaml:"height"`
	// Wireframe is the path of a wireframe stream to write. Empty
	// means no stream is written.
	Wireframe string `yaml:"wireframe"`
	// EveryInsert writes one wireframe frame after every insertion
	// rather than a single frame of the finished index.
	EveryInsert bool `yaml:"every_insert"`
	// Color colors the node listing by height.
	Color bool `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Seed: 1,
		Targets: TargetConfig{
			Count: 100,
			Area:  AreaConfig{XMin: -16, YMin: -16, Width: 32, Height: 32},
		},
		Index: IndexConfig{
			MaxEntries: 9,
			MinEntries: 4,
			Order:      rtree.SortMinXY.String(),
		},
		Query: QueryConfig{
			Mode: ModeKNN,
			K:    4,
			From: [2]int{0, 0},
			To:   [2]int{4, 4},
		},
	}
}

// Load returns the default configuration overlaid with the YAML file
// at path, and validates the result. An empty path yields the
// validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadYAML overlays the configuration with a YAML file. Keys absent
// from the file keep their current values.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// An empty file decodes to io.EOF, which leaves the defaults alone.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Targets.Count < 0 {
		return fmt.Errorf("targets.count must be non-negative, got %d", c.Targets.Count)
	}
	area := c.Targets.Area
	if area.Width <= 0 || area.Height <= 0 {
		return fmt.Errorf("targets.area must have positive width and height, got %dx%d", area.Width, area.Height)
	}

	if _, err := rtree.ParseSortOrder(c.Index.Order); err != nil {
		return fmt.Errorf("index.order must be 'minxy' or 'hilbert', got %s", c.Index.Order)
	}

	switch c.Query.Mode {
	case ModeKNN:
		if c.Query.K < 1 {
			return fmt.Errorf("query.k must be at least 1, got %d", c.Query.K)
		}
	case ModeRange:
		if !area.Contains(c.Query.To[0], c.Query.To[1]) {
			return fmt.Errorf("query.to cell %v is outside targets.area", c.Query.To)
		}
	default:
		return fmt.Errorf("query.mode must be 'range' or 'knn', got %s", c.Query.Mode)
	}
	if !area.Contains(c.Query.From[0], c.Query.From[1]) {
		return fmt.Errorf("query.from cell %v is outside targets.area", c.Query.From)
	}

	if c.Output.Height < 0 {
		return fmt.Errorf("output.height must be non-negative, got %d", c.Output.Height)
	}

	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
