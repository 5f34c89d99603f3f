package cli

import (
	"github.com/dmitrijs2005/sealvault/internal/client/client"
	"github.com/dmitrijs2005/sealvault/internal/client/config"
)

// App carries the state shared by all sealctl commands.
type App struct {
	config *config.Config

	// newClient opens a connection for one command; tests replace it.
	newClient func(cfg *config.Config) (client.Client, error)

	configPath string
	server     string
	token      string
	jsonOutput bool
}

func NewApp() *App {
	return &App{newClient: dialGRPC}
}

func dialGRPC(cfg *config.Config) (client.Client, error) {
	return client.NewGRPCClient(cfg.ServerEndpointAddr, cfg.AccessToken, cfg.RequestTimeout, cfg.MaxMessageBytes)
}

// withClient opens a client, runs fn and closes the client again.
func (a *App) withClient(fn func(client.Client) error) error {
	c, err := a.newClient(a.config)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c)
}
