package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/planfile"
)

// validateCommand creates the validate command, which checks a stored
// layout for structural problems.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <layout.json>",
		Short: "Check a stored layout for structural problems",
		Long: `Check a stored layout for structural problems.

Reports overlapping rooms, rooms outside the footprint, and missing
required room types. Findings are advisory for generated layouts but
the command exits non-zero when any are present, so it can gate
hand-edited files in scripts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
	return cmd
}

func (c *CLI) runValidate(path string) error {
	layout, err := planfile.ImportJSON(path)
	if err != nil {
		return err
	}

	issues := layout.Validate()
	if len(issues) == 0 {
		printSuccess("Layout is valid (%d rooms)", len(layout.Rooms))
		return nil
	}

	printWarning("Found %d issue(s)", len(issues))
	for _, issue := range issues {
		printDetail("[%s] %s", issue.Kind, issue.Message)
	}
	return errors.New(errors.ErrCodeInvalidInput, "layout failed validation")
}
