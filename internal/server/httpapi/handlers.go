package httpapi

import (
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/bucketdrop/internal/common"
	"github.com/dmitrijs2005/bucketdrop/internal/models"
	"github.com/dmitrijs2005/bucketdrop/internal/server/objects"
	"github.com/gofiber/fiber/v3"
)

func (s *Server) listObjects(c fiber.Ctx) error {
	records, err := s.objects.ListObjects(c.Context())
	if err != nil {
		s.logger.Error(c.Context(), "List error", "error", err)
		return jsonError(c, statusFor(err), "Failed to list files")
	}

	return c.JSON(records)
}

func (s *Server) listPage(c fiber.Ctx) error {
	page, err := s.objects.ListPage(c.Context(), c.Query("cursor"))
	if err != nil {
		s.logger.Error(c.Context(), "List error", "error", err)
		return jsonError(c, statusFor(err), "Failed to list files")
	}

	return c.JSON(page)
}

func (s *Server) presign(c fiber.Ctx) error {
	var req models.PresignRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}

	capability, err := s.objects.MintUploadCapability(c.Context(), objects.UploadIntent{
		Directory:   req.Dir(),
		FileName:    req.FileName,
		ContentType: req.FileType,
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidRequest) {
			return jsonError(c, fiber.StatusBadRequest, "Missing fileName or fileType")
		}
		s.logger.Error(c.Context(), "Presign error", "error", err)
		return jsonError(c, statusFor(err), "Failed to generate presigned URL")
	}

	return c.JSON(models.PresignResponse{
		UploadURL: capability.URL,
		Key:       capability.Key,
		ExpiresAt: capability.ExpiresAt,
	})
}

func (s *Server) mintDownload(c fiber.Ctx) error {
	capability, err := s.objects.MintDownloadCapability(c.Context(), c.Query("key"))
	if err != nil {
		if errors.Is(err, common.ErrInvalidRequest) {
			return jsonError(c, fiber.StatusBadRequest, "Missing key")
		}
		s.logger.Error(c.Context(), "Presign error", "error", err)
		return jsonError(c, statusFor(err), "Failed to generate presigned URL")
	}

	return c.JSON(models.DownloadResponse{
		DownloadURL: capability.URL,
		Key:         capability.Key,
		ExpiresAt:   capability.ExpiresAt,
	})
}

func (s *Server) deleteObject(c fiber.Ctx) error {
	// requireAdmin ran before us
	identity, _ := identityFrom(c)

	var req models.DeleteRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}

	if req.File.Key == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing key fileName")
	}

	if err := s.objects.DeleteObject(c.Context(), req.File.Key, identity); err != nil {
		s.logger.Error(c.Context(), "Delete error", "key", req.File.Key, "error", err)
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			return c.Status(status).JSON(models.ErrorResponse{Error: "Failed to delete file", Details: backendCause(err).Error()})
		}
		return jsonError(c, status, err.Error())
	}

	return c.JSON(models.DeleteResponse{Success: true, Key: req.File.Key})
}
