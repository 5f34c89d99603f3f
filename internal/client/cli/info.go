package cli

import (
	"time"

	"github.com/dmitrijs2005/sealvault/internal/client/client"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show item metadata without using up a download",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withClient(func(c client.Client) error {
				info, err := c.PeekInfo(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if a.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), info)
				}
				return writeInfo(cmd.OutOrStdout(), info, time.Now())
			})
		},
	}
}
