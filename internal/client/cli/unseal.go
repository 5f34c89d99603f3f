package cli

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/sealvault/internal/client/client"
	"github.com/dmitrijs2005/sealvault/internal/common"
	pb "github.com/dmitrijs2005/sealvault/internal/proto"
	"github.com/spf13/cobra"
)

func newUnsealCmd(a *App) *cobra.Command {
	var (
		accessKey        string
		passphrasePrompt bool
		output           string
	)

	cmd := &cobra.Command{
		Use:   "unseal <id>",
		Short: "Download and decrypt an item, using up one download",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &pb.UnsealRequest{Id: args[0], AccessKey: accessKey}
			if passphrasePrompt {
				pw, err := GetPassword(cmd.ErrOrStderr(), "Enter passphrase")
				if err != nil {
					return err
				}
				defer common.WipeByteArray(pw)
				req.Passphrase = pw
			}

			return a.withClient(func(c client.Client) error {
				resp, err := c.Unseal(cmd.Context(), req)
				if err != nil {
					return err
				}
				defer common.WipeByteArray(resp.Payload)

				if output == "" || output == "-" {
					_, err := cmd.OutOrStdout().Write(resp.Payload)
					return err
				}
				if err := os.WriteFile(output, resp.Payload, 0o600); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(resp.Payload), output)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&accessKey, "access-key", "k", "", "access key printed by seal")
	cmd.Flags().BoolVarP(&passphrasePrompt, "passphrase-prompt", "p", false, "read the passphrase from the terminal")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the payload to this file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("access-key", "passphrase-prompt")
	cmd.MarkFlagsOneRequired("access-key", "passphrase-prompt")

	return cmd
}
