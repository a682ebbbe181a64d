package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/bucketdrop/internal/common"
	"github.com/dmitrijs2005/bucketdrop/internal/models"
	"github.com/gofiber/fiber/v3"
)

// statusFor maps the sentinel error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

var sentinels = []error{
	common.ErrInvalidRequest,
	common.ErrUnauthenticated,
	common.ErrForbidden,
	common.ErrStorageUnavailable,
	common.ErrTransferFailed,
}

func isSentinel(err error) bool {
	for _, s := range sentinels {
		if err == s {
			return true
		}
	}
	return false
}

// backendCause returns the innermost error under the service's wrapping,
// so a response can name the storage failure without the wrap chain.
func backendCause(err error) error {
	for {
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			var next error
			for _, e := range x.Unwrap() {
				if !isSentinel(e) {
					next = e
				}
			}
			if next == nil {
				return err
			}
			err = next
		case interface{ Unwrap() error }:
			next := x.Unwrap()
			if next == nil {
				return err
			}
			err = next
		default:
			return err
		}
	}
}

func jsonError(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: msg})
}

// errorHandler renders errors that escape the handlers (unknown routes,
// panics caught by the recover middleware) in the same JSON shape.
func (s *Server) errorHandler(c fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		msg = fe.Message
	}

	if status >= fiber.StatusInternalServerError {
		s.logger.Error(c.Context(), "unhandled error", "path", c.Path(), "error", err)
	}

	return jsonError(c, status, msg)
}
