package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/evaluate"
	"github.com/matzehuels/planforge/pkg/planfile"
)

// evaluateCommand creates the evaluate command, which re-scores a stored
// layout without running a search.
func (c *CLI) evaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <layout.json>",
		Short: "Score a stored layout across all quality dimensions",
		Long: `Score a stored layout across all quality dimensions.

Reads a layout written by generate (or any file in the same JSON format)
and reports its per-dimension scores and weighted total. Useful for
comparing layouts produced with different seeds or after hand edits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEvaluate(cmd, args[0])
		},
	}
	return cmd
}

func (c *CLI) runEvaluate(cmd *cobra.Command, path string) error {
	layout, err := planfile.ImportJSON(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	scores := runner.Score(cmd.Context(), layout, evaluate.Config{})

	printSuccess("Scored layout with %d rooms", len(layout.Rooms))
	printLayoutSummary(layout)
	printNewline()
	printScores(scores)

	return nil
}
