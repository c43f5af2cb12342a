package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sir/pkg/types"
)

func newRenameCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "rename <topic> <new-name>",
		Aliases: []string{"edit"},
		Short:   "Rename a topic, keeping its review schedule",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(e)
			if err != nil {
				return err
			}

			oldName, newName := args[0], args[1]
			return a.mutate(func(c *types.Collection) (bool, error) {
				err := c.Rename(oldName, newName)
				switch {
				case errors.Is(err, types.ErrNotFound):
					fmt.Fprintln(cmd.OutOrStdout(), msgNotFound)
					return false, nil
				case err != nil:
					return false, userError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", oldName, newName)
				return true, nil
			})
		},
	}
}
