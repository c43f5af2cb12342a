package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// View modes.
const (
	viewToday = "today"
	viewAll   = "all"
)

func newViewCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "view [today|all]",
		Short: "Show topics due today, or every topic",
		Long: `Show review topics ordered by urgency.

  today  topics due today or overdue (default)
  all    every topic with the time until its next review

Example:
  sir view
  sir view all
  sir view all --json`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{viewToday, viewAll},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := viewToday
			if len(args) == 1 {
				mode = args[0]
			}

			a, err := openApp(e)
			if err != nil {
				return err
			}
			c, err := a.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			now := c.Now()
			switch mode {
			case viewAll:
				return renderAll(out, c.All(), now, e.flags.jsonMode)
			case viewToday:
				return renderToday(out, c.Due(), now, e.flags.jsonMode)
			default:
				return userError(fmt.Errorf("unknown view %q", mode))
			}
		},
	}
}
