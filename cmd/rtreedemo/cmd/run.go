package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogama/spatial/internal/config"
	"github.com/gogama/spatial/internal/demo"
)

// runOptions holds the flags of the run command. Each flag overrides
// the matching configuration value only if it was given.
type runOptions struct {
	configPath  string
	seed        int64
	targets     int
	maxEntries  int
	minEntries  int
	bulk        bool
	order       string
	knn         int
	at          []int
	window      []int
	height      int
	wireframe   string
	everyInsert bool
	color       bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build an index and run one query against it",
		Long: `Scatter targets, build an R-Tree over them and answer one query with
both the index and a linear scan.

Settings come from the defaults, then the --config file, then flags.
Use 'rtreedemo config show' to see the defaults.`,
		Example: `  # Five nearest targets to cell (3,-2) of 500 scattered targets
  rtreedemo run --targets 500 --knn 5 --at 3,-2

  # Range query over a bulk loaded index, recording its wireframe
  rtreedemo run --bulk --order hilbert --range -4,-4,4,4 --wireframe tree.rwf

  # Watch the tree grow, leaves only
  rtreedemo run --targets 40 --every-insert --height 1 --wireframe grow.rwf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			r, err := demo.Run(cfg)
			if err != nil {
				return err
			}
			return r.Print(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed for target placement")
	cmd.Flags().IntVarP(&opts.targets, "targets", "n", 0, "Number of target placement attempts")
	cmd.Flags().IntVar(&opts.maxEntries, "max-entries", 0, "Maximum children per node")
	cmd.Flags().IntVar(&opts.minEntries, "min-entries", 0, "Minimum children per non-root node")
	cmd.Flags().BoolVar(&opts.bulk, "bulk", false, "Bulk load the index instead of inserting")
	cmd.Flags().StringVar(&opts.order, "order", "", "Bulk load order: minxy or hilbert")
	cmd.Flags().IntVarP(&opts.knn, "knn", "k", 0, "Run a k-nearest-neighbor query for k targets")
	cmd.Flags().IntSliceVar(&opts.at, "at", nil, "Query cell x,y")
	cmd.Flags().IntSliceVar(&opts.window, "range", nil, "Run a range query over cells x0,y0,x1,y1")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Only show nodes at this height (0 for all)")
	cmd.Flags().StringVarP(&opts.wireframe, "wireframe", "w", "", "Write the tree shape to this wireframe file")
	cmd.Flags().BoolVar(&opts.everyInsert, "every-insert", false, "Write a wireframe frame after every insert")
	cmd.Flags().BoolVar(&opts.color, "color", false, "Color node boxes by height")
	cmd.MarkFlagsMutuallyExclusive("knn", "range")

	return cmd
}

// resolve loads the configuration file, overlays the flags which were
// given and validates the result.
func (o *runOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("targets") {
		cfg.Targets.Count = o.targets
	}
	if flags.Changed("max-entries") {
		cfg.Index.MaxEntries = o.maxEntries
	}
	if flags.Changed("min-entries") {
		cfg.Index.MinEntries = o.minEntries
	}
	if flags.Changed("bulk") {
		cfg.Index.Bulk = o.bulk
	}
	if flags.Changed("order") {
		cfg.Index.Order = o.order
	}
	if flags.Changed("knn") {
		cfg.Query.Mode = config.ModeKNN
		cfg.Query.K = o.knn
	}
	if flags.Changed("at") {
		if len(o.at) != 2 {
			return nil, fmt.Errorf("--at takes x,y, got %d values", len(o.at))
		}
		cfg.Query.From = [2]int{o.at[0], o.at[1]}
	}
	if flags.Changed("range") {
		if len(o.window) != 4 {
			return nil, fmt.Errorf("--range takes x0,y0,x1,y1, got %d values", len(o.window))
		}
		cfg.Query.Mode = config.ModeRange
		cfg.Query.From = [2]int{o.window[0], o.window[1]}
		cfg.Query.To = [2]int{o.window[2], o.window[3]}
	}
	if flags.Changed("height") {
		cfg.Output.Height = o.height
	}
	if flags.Changed("wireframe") {
		cfg.Output.Wireframe = o.wireframe
	}
	if flags.Changed("every-insert") {
		cfg.Output.EveryInsert = o.everyInsert
	}
	if flags.Changed("color") {
		cfg.Output.Color = o.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
