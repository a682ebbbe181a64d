// Package server wires the bucketdrop server together: it builds the
// storage gateway and the capability service from config, then runs the
// HTTP API and the gRPC health endpoint until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bucketdrop/internal/logging"
	"github.com/dmitrijs2005/bucketdrop/internal/server/config"
	"github.com/dmitrijs2005/bucketdrop/internal/server/httpapi"
	"github.com/dmitrijs2005/bucketdrop/internal/server/objects"
	"github.com/dmitrijs2005/bucketdrop/internal/server/storage"

	gs "github.com/dmitrijs2005/bucketdrop/internal/server/grpc"
)

var newGateway = func(ctx context.Context, cfg storage.Config) (storage.Gateway, error) {
	return storage.NewS3Gateway(ctx, cfg)
}

type App struct {
	config        *config.Config
	logger        logging.Logger
	objectService *objects.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(c.LogFormat, os.Stdout)

	gw, err := newGateway(ctx, storage.Config{
		Endpoint:        c.S3BaseEndpoint,
		Region:          c.S3Region,
		Bucket:          c.S3Bucket,
		AccessKeyID:     c.S3AccessKeyID,
		SecretAccessKey: c.S3SecretAccessKey,
		UsePathStyle:    c.S3UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	svc := objects.NewService(gw, objects.Options{
		UploadTTL:   c.UploadURLTTL,
		DownloadTTL: c.DownloadURLTTL,
		PageSize:    c.ListPageSize,
	}, logger)

	return &App{config: c, logger: logger, objectService: svc}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.objectService, app.config.SecretKey, app.config.RequireAuth)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.objectService, app.config.HealthCheckInterval)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or one of
// the servers fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "bucket", app.config.S3Bucket, "require_auth", app.config.RequireAuth)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
}
