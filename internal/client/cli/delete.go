package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sealvault/internal/client/client"
	"github.com/spf13/cobra"
)

var errDeleteAborted = errors.New("delete aborted")

func newDeleteCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item you sealed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !yes {
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, err := GetSimpleText(reader, fmt.Sprintf("Type the id to delete %s", id), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				if answer != id {
					return errDeleteAborted
				}
			}

			return a.withClient(func(c client.Client) error {
				if err := c.Delete(cmd.Context(), id); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
