// Package httpapi exposes the capability minting service as JSON endpoints
// and guards privileged ones with the bearer identity's role.
package httpapi

import (
	"context"
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/logging"
	"github.com/dmitrijs2005/bucketdrop/internal/models"
	"github.com/dmitrijs2005/bucketdrop/internal/server/auth"
	"github.com/dmitrijs2005/bucketdrop/internal/server/objects"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
)

const shutdownTimeout = 5 * time.Second

// ObjectService is the subset of *objects.Service used by the handlers.
type ObjectService interface {
	ListObjects(ctx context.Context) ([]models.ObjectRecord, error)
	ListPage(ctx context.Context, cursor string) (models.ObjectPage, error)
	MintUploadCapability(ctx context.Context, intent objects.UploadIntent) (objects.SignedCapability, error)
	MintDownloadCapability(ctx context.Context, key string) (objects.SignedCapability, error)
	DeleteObject(ctx context.Context, key string, caller auth.Identity) error
}

type Server struct {
	address     string
	objects     ObjectService
	logger      logging.Logger
	jwtSecret   []byte
	requireAuth bool
	app         *fiber.App
}

// NewServer wires routes. When requireAuth is false, list and presign are
// reachable without a token; delete always needs an admin identity.
func NewServer(address string, l logging.Logger, svc ObjectService, secretKey string, requireAuth bool) *Server {
	s := &Server{
		address:     address,
		objects:     svc,
		logger:      l.With("module", "http_server"),
		jwtSecret:   []byte(secretKey),
		requireAuth: requireAuth,
	}

	app := fiber.New(fiber.Config{
		AppName:      "bucketdrop",
		ErrorHandler: s.errorHandler,
	})

	app.Use(recoverer.New())
	app.Use(cors.New())
	app.Use(s.requestLogger)
	app.Use(s.identify)
	app.Use(s.gateReads)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/objects", s.listObjects)
	app.Get("/objects/page", s.listPage)
	app.Get("/objects/download", s.mintDownload)
	app.Post("/objects/presign", s.presign)
	app.Delete("/objects", s.requireAdmin, s.deleteObject)

	s.app = app
	return s
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address, fiber.ListenConfig{DisableStartupMessage: true})
}
