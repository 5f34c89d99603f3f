// Package server initializes and runs the sealvault server. It opens the
// configured metadata and blob stores, starts the expiry reaper, serves the
// gRPC endpoint and shuts everything down on a signal.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/logging"
	"github.com/dmitrijs2005/sealvault/internal/server/blobstore"
	"github.com/dmitrijs2005/sealvault/internal/server/config"
	"github.com/dmitrijs2005/sealvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sealvault/internal/server/services"

	gs "github.com/dmitrijs2005/sealvault/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	vault  *services.VaultService
	reaper *services.Reaper
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, err
	}

	repos, err := repomanager.Open(ctx, c.StorageDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("metadata store init error: %w", err)
	}

	blobs, err := blobstore.Open(ctx, c.BlobDriver, c.BlobDir, blobstore.S3Config{
		Region:       c.S3Region,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		Bucket:       c.S3Bucket,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	vault := services.NewVaultService(repos.Items(), blobs, logger, services.VaultOptions{
		MaxPayloadBytes: c.MaxPayloadBytes,
		ConsumeRetries:  c.ConsumeRetries,
	})
	reaper := services.NewReaper(repos.Items(), blobs, logger, c.ReapBatchSize, nil)

	return &App{config: c, logger: logger, repos: repos, vault: vault, reaper: reaper}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.vault, app.config.SecretKey, common.MessageLimit(app.config.MaxPayloadBytes))

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the metadata store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.reaper.Run(ctx, app.config.ReapInterval)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing metadata store", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
