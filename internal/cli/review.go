package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sir/pkg/types"
)

func newReviewCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "review <topic>",
		Short: "Mark a topic as reviewed today",
		Long: `Mark a topic as reviewed today. The gap until the next review grows from
a day to a week, and from a week to a month; it then stays at a month.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(e)
			if err != nil {
				return err
			}

			name := args[0]
			return a.mutate(func(c *types.Collection) (bool, error) {
				err := c.Review(name)
				if errors.Is(err, types.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), msgNotFound+" Did you misspell?")
					return false, nil
				}
				if err != nil {
					return false, sysError(err)
				}

				topic, _ := c.Find(name)
				fmt.Fprintf(cmd.OutOrStdout(), "Reviewed %q, next review in %s\n",
					name, topic.NextReviewLabel(c.Now()))
				return true, nil
			})
		},
	}
}
