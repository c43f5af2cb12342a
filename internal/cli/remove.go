package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sir/pkg/types"
)

// msgNotFound is printed when a command names a topic that does not exist.
const msgNotFound = "Review topic was not found."

func newRemoveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <topic>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a topic",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(e)
			if err != nil {
				return err
			}

			name := args[0]
			return a.mutate(func(c *types.Collection) (bool, error) {
				if !c.Remove(name) {
					fmt.Fprintln(cmd.OutOrStdout(), msgNotFound)
					return false, nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", name)
				return true, nil
			})
		},
	}
}
