package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/pipeline"
	"github.com/matzehuels/planforge/pkg/planfile"
)

// generateCommand creates the generate command, the main entry point: it
// searches for a high-scoring layout and writes it to a JSON file.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath string
		roomsStr   string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Search for an optimized floor-plan layout",
		Long: `Search for an optimized floor-plan layout.

The generate command samples random layouts for the given footprint and
room program, then runs a population-based search to improve them. The
winning layout is scored across five dimensions and written as JSON.

The room program is given as comma-separated type=count pairs:

  planforge generate --width 20 --height 15 --rooms living_room=1,bedroom=2,kitchen=1,bathroom=1

Runs are cached locally: repeating an identical invocation returns the
stored result. Use --refresh to force a new search, or a different
--seed to explore another region of the search space.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				mergeFlagOverrides(cmd, &loaded, &opts)
				opts = loaded
			}
			if roomsStr != "" {
				rooms, err := parseRooms(roomsStr)
				if err != nil {
					return err
				}
				opts.Rooms = rooms
			}
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML run configuration file")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "footprint width in meters")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "footprint height in meters")
	cmd.Flags().StringVar(&roomsStr, "rooms", "", "room program as type=count pairs (comma-separated)")
	cmd.Flags().IntVar(&opts.Search.MaxIterations, "iterations", 0, "search iteration budget")
	cmd.Flags().IntVar(&opts.Search.PopulationSize, "population", 0, "candidate population size")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (default 42)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "parallel search workers (default 1)")
	cmd.Flags().StringVarP(&output, "output", "o", "layout.json", "output file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable run caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached runs")

	return cmd
}

// mergeFlagOverrides copies explicitly set flag values over config-file
// values, so flags always win.
func mergeFlagOverrides(cmd *cobra.Command, loaded, flags *pipeline.Options) {
	if cmd.Flags().Changed("width") {
		loaded.Width = flags.Width
	}
	if cmd.Flags().Changed("height") {
		loaded.Height = flags.Height
	}
	if cmd.Flags().Changed("iterations") {
		loaded.Search.MaxIterations = flags.Search.MaxIterations
	}
	if cmd.Flags().Changed("population") {
		loaded.Search.PopulationSize = flags.Search.PopulationSize
	}
	if cmd.Flags().Changed("seed") {
		loaded.Seed = flags.Seed
	}
	if cmd.Flags().Changed("workers") {
		loaded.Workers = flags.Workers
	}
	loaded.Refresh = flags.Refresh
}

// runGenerate executes the pipeline and writes the winning layout.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = logger

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Searching layouts...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Search failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Searched %d generations", result.Stats.Generations))

	if err := planfile.ExportJSON(result.Layout, output); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}

	printSuccess("Found layout with %d rooms", result.Stats.RoomsPlaced)
	if result.Stats.RoomsPlaced < result.Stats.RoomsRequested {
		printWarning("%d of %d requested rooms did not fit",
			result.Stats.RoomsRequested-result.Stats.RoomsPlaced, result.Stats.RoomsRequested)
	}
	printLayoutSummary(result.Layout)
	printStats(result.Stats, result.CacheInfo.RunHit)
	printNewline()
	printScores(result.Scores)
	printNewline()
	printFile(output)
	printNextStep("Re-score it later", fmt.Sprintf("planforge evaluate %s", output))

	return nil
}
