package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/common"
	"github.com/dmitrijs2005/bucketdrop/internal/server/auth"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	authErrorKey ctxKey = "auth_error"

	requestIDHeader = "X-Request-ID"
)

func (s *Server) requestLogger(c fiber.Ctx) error {
	start := time.Now()

	requestID := c.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Set(requestIDHeader, requestID)

	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	s.logger.Info(c.Context(), "request",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration", time.Since(start).String(),
	)

	return err
}

// identify resolves the bearer token, if any. It never rejects a request:
// guards decide what a missing or bad identity means for their route.
func (s *Server) identify(c fiber.Ctx) error {
	header := c.Get(common.AuthorizationHeaderName)
	if header == "" {
		return c.Next()
	}

	if !strings.HasPrefix(header, common.BearerPrefix) {
		c.Locals(authErrorKey, common.ErrInvalidToken)
		return c.Next()
	}

	identity, err := auth.ParseToken(strings.TrimPrefix(header, common.BearerPrefix), s.jwtSecret)
	if err != nil {
		c.Locals(authErrorKey, err)
		return c.Next()
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

func identityFrom(c fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(identityKey).(auth.Identity)
	return identity, ok
}

// gateReads applies requireIdentity to every route but /health when the
// server runs with requireAuth. Delete has its own, stricter guard.
func (s *Server) gateReads(c fiber.Ctx) error {
	if !s.requireAuth || c.Path() == "/health" {
		return c.Next()
	}
	return s.requireIdentity(c)
}

func (s *Server) requireIdentity(c fiber.Ctx) error {
	if _, ok := identityFrom(c); !ok {
		if err, _ := c.Locals(authErrorKey).(error); err != nil {
			s.logger.Warn(c.Context(), "rejected token", "error", err)
		}
		return jsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	return c.Next()
}

// requireAdmin rejects callers without an identity (401) or without the
// admin role (403) before the wrapped handler runs.
func (s *Server) requireAdmin(c fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		if err, _ := c.Locals(authErrorKey).(error); err != nil {
			s.logger.Warn(c.Context(), "rejected token", "error", err)
		}
		return jsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	if !identity.IsAdmin() {
		s.logger.Warn(c.Context(), "admin required", "user_id", identity.UserID, "role", identity.Role)
		return jsonError(c, fiber.StatusForbidden, "Forbidden: User does not have 'admin' privileges.")
	}

	return c.Next()
}
