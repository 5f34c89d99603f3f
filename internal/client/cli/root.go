package cli

import (
	"github.com/dmitrijs2005/sealvault/internal/buildinfo"
	"github.com/dmitrijs2005/sealvault/internal/client/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the sealctl command tree around a.
func NewRootCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sealctl",
		Short:         "sealctl shares files through an ephemeral encrypted vault",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	cmd.Version = buildinfo.Version

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to config file (.json, .toml, .yaml)")
	flags.StringVar(&a.server, "server", "", "vault gRPC endpoint, host:port")
	flags.StringVar(&a.token, "token", "", "owner access token for seal and delete")
	flags.BoolVar(&a.jsonOutput, "json", false, "output JSON")

	cmd.AddCommand(
		newSealCmd(a),
		newUnsealCmd(a),
		newInfoCmd(a),
		newDeleteCmd(a),
	)

	return cmd
}

// loadConfig resolves the config once per invocation; flags win over the
// file and the environment.
func (a *App) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerEndpointAddr = a.server
	}
	if flags.Changed("token") {
		cfg.AccessToken = a.token
	}

	a.config = cfg
	return nil
}
