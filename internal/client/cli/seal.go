package cli

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/sealvault/internal/client/client"
	"github.com/dmitrijs2005/sealvault/internal/common"
	pb "github.com/dmitrijs2005/sealvault/internal/proto"
	"github.com/spf13/cobra"
)

func newSealCmd(a *App) *cobra.Command {
	var (
		passphrasePrompt bool
		maxDownloads     int64
		expireHours      int64
	)

	cmd := &cobra.Command{
		Use:   "seal <file>",
		Short: "Encrypt a file into the vault and print its id",
		Long: "Encrypt a file into the vault. Without --passphrase-prompt the vault\n" +
			"returns a random access key, which is printed once and never stored.\n" +
			"Use - to read the payload from standard input.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, name, err := readPayload(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			req := &pb.SealRequest{
				Payload:     payload,
				FileName:    name,
				ContentType: detectContentType(name, payload),
			}
			if cmd.Flags().Changed("max-downloads") {
				req.MaxDownloads = &maxDownloads
			}
			if cmd.Flags().Changed("expire-hours") {
				ttl, err := expireSeconds(expireHours)
				if err != nil {
					return err
				}
				req.TtlSeconds = &ttl
			}
			if passphrasePrompt {
				pw, err := getNewPassphrase(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer common.WipeByteArray(pw)
				req.Passphrase = pw
			}

			return a.withClient(func(c client.Client) error {
				resp, err := c.Seal(cmd.Context(), req)
				if err != nil {
					return err
				}
				if a.jsonOutput {
					return writeJSON(cmd.OutOrStdout(), resp)
				}
				return writeSealResult(cmd.OutOrStdout(), resp)
			})
		},
	}

	cmd.Flags().BoolVarP(&passphrasePrompt, "passphrase-prompt", "p", false, "protect the item with a passphrase read from the terminal")
	cmd.Flags().Int64VarP(&maxDownloads, "max-downloads", "n", 0, "number of allowed downloads (default unlimited)")
	cmd.Flags().Int64VarP(&expireHours, "expire-hours", "e", 0, "hours until the item expires (default never)")

	return cmd
}

// maxExpireHours keeps hours*3600 within the ttl a server accepts.
const maxExpireHours = common.MaxTTLSeconds / 3600

func expireSeconds(hours int64) (int64, error) {
	if hours < 0 {
		return 0, fmt.Errorf("%w: --expire-hours must not be negative", common.ErrValidation)
	}
	if hours > maxExpireHours {
		return 0, fmt.Errorf("%w: --expire-hours must be at most %d", common.ErrValidation, maxExpireHours)
	}
	return hours * 3600, nil
}

// readPayload returns the content and base name of path, or of stdin for "-".
func readPayload(stdin io.Reader, path string) ([]byte, string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, filepath.Base(path), nil
}

func detectContentType(name string, payload []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(payload)
}
