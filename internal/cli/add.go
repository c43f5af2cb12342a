package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sir/pkg/types"
)

func newAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <topic>",
		Short: "Add a topic to review, first due tomorrow",
		Long: `Add a topic to review. A new topic is due one day after it is added.
Adding a topic that already exists does nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, err := types.NewReviewTopicAt(args[0], e.clock())
			if err != nil {
				return userError(err)
			}

			a, err := openApp(e)
			if err != nil {
				return err
			}

			return a.mutate(func(c *types.Collection) (bool, error) {
				inserted, err := c.Add(topic)
				if err != nil {
					return false, userError(err)
				}
				if !inserted {
					slog.Debug("topic already exists, ignoring add", "topic", topic.Name)
					return false, nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", topic.Name)
				return true, nil
			})
		},
	}
}
