// Package objects is the capability minting service: it turns storage
// listings into ObjectRecords with pre-signed GET URLs, mints PUT URLs for
// uploads and performs admin-only deletes.
package objects

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/common"
	"github.com/dmitrijs2005/bucketdrop/internal/keyspace"
	"github.com/dmitrijs2005/bucketdrop/internal/logging"
	"github.com/dmitrijs2005/bucketdrop/internal/models"
	"github.com/dmitrijs2005/bucketdrop/internal/server/auth"
	"github.com/dmitrijs2005/bucketdrop/internal/server/storage"
)

const (
	DefaultUploadTTL   = 10 * time.Minute
	DefaultDownloadTTL = 10 * time.Minute
	DefaultPageSize    = 1000
)

// Options tune the service. Zero values fall back to the defaults above.
type Options struct {
	UploadTTL   time.Duration
	DownloadTTL time.Duration
	PageSize    int
	Now         func() time.Time
}

func (o Options) withDefaults() Options {
	if o.UploadTTL <= 0 {
		o.UploadTTL = DefaultUploadTTL
	}
	if o.DownloadTTL <= 0 {
		o.DownloadTTL = DefaultDownloadTTL
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// UploadIntent is what a caller wants to upload.
type UploadIntent struct {
	Directory   string
	FileName    string
	ContentType string
}

// SignedCapability is a minted, method-scoped URL for a single key.
type SignedCapability struct {
	URL       string
	Key       string
	Method    string
	ExpiresAt time.Time
}

type Service struct {
	gateway storage.Gateway
	opts    Options
	logger  logging.Logger
}

func NewService(gateway storage.Gateway, opts Options, logger logging.Logger) *Service {
	return &Service{
		gateway: gateway,
		opts:    opts.withDefaults(),
		logger:  logger.With("module", "objects"),
	}
}

// ListPage returns the page of records that starts at cursor. An empty
// cursor starts from the beginning of the bucket.
func (s *Service) ListPage(ctx context.Context, cursor string) (models.ObjectPage, error) {
	res, err := s.gateway.List(ctx, cursor, s.opts.PageSize)
	if err != nil {
		s.logger.Error(ctx, "list error", "error", err)
		return models.ObjectPage{}, fmt.Errorf("%w: list objects: %w", common.ErrStorageUnavailable, err)
	}

	records := make([]models.ObjectRecord, 0, len(res.Objects))
	for _, o := range res.Objects {
		req, err := s.gateway.PresignGet(ctx, o.Key, s.opts.DownloadTTL)
		if err != nil {
			s.logger.Error(ctx, "presign get error", "key", o.Key, "error", err)
			return models.ObjectPage{}, fmt.Errorf("%w: presign %q: %w", common.ErrStorageUnavailable, o.Key, err)
		}

		records = append(records, models.ObjectRecord{
			Key:          o.Key,
			Size:         o.Size,
			LastModified: o.LastModified,
			DownloadURL:  req.URL,
		})
	}

	return models.ObjectPage{Objects: records, NextCursor: res.NextToken}, nil
}

// Pages is a lazy sequence over the whole listing, one storage call per
// page. Ranging over it again restarts from the first page. Iteration stops
// after the first error.
func (s *Service) Pages(ctx context.Context) iter.Seq2[models.ObjectPage, error] {
	return func(yield func(models.ObjectPage, error) bool) {
		cursor := ""
		for {
			page, err := s.ListPage(ctx, cursor)
			if err != nil {
				yield(models.ObjectPage{}, err)
				return
			}
			if !yield(page, nil) {
				return
			}
			if page.NextCursor == "" {
				return
			}
			cursor = page.NextCursor
		}
	}
}

// ListObjects drains Pages. An empty bucket yields an empty, non-nil slice.
func (s *Service) ListObjects(ctx context.Context) ([]models.ObjectRecord, error) {
	records := make([]models.ObjectRecord, 0)
	for page, err := range s.Pages(ctx) {
		if err != nil {
			return nil, err
		}
		records = append(records, page.Objects...)
	}
	return records, nil
}

// MintUploadCapability derives the object key for intent and mints a PUT
// URL bound to that key and content type. Existing objects under the same
// key are overwritten by the upload.
func (s *Service) MintUploadCapability(ctx context.Context, intent UploadIntent) (SignedCapability, error) {
	if intent.FileName == "" || intent.ContentType == "" {
		return SignedCapability{}, fmt.Errorf("%w: missing fileName or fileType", common.ErrInvalidRequest)
	}

	key := keyspace.BuildKey(intent.Directory, intent.FileName, s.opts.Now())

	req, err := s.gateway.PresignPut(ctx, key, intent.ContentType, s.opts.UploadTTL)
	if err != nil {
		s.logger.Error(ctx, "presign error", "key", key, "error", err)
		return SignedCapability{}, fmt.Errorf("%w: presign upload: %w", common.ErrStorageUnavailable, err)
	}

	s.logger.Info(ctx, "upload capability minted", "key", key, "content_type", intent.ContentType)

	return SignedCapability{URL: req.URL, Key: key, Method: req.Method, ExpiresAt: req.ExpiresAt}, nil
}

// MintDownloadCapability mints a fresh GET URL for key, e.g. when a URL
// from an earlier listing has expired.
func (s *Service) MintDownloadCapability(ctx context.Context, key string) (SignedCapability, error) {
	if key == "" {
		return SignedCapability{}, fmt.Errorf("%w: missing key", common.ErrInvalidRequest)
	}

	req, err := s.gateway.PresignGet(ctx, key, s.opts.DownloadTTL)
	if err != nil {
		s.logger.Error(ctx, "presign get error", "key", key, "error", err)
		return SignedCapability{}, fmt.Errorf("%w: presign download: %w", common.ErrStorageUnavailable, err)
	}

	return SignedCapability{URL: req.URL, Key: key, Method: req.Method, ExpiresAt: req.ExpiresAt}, nil
}

// DeleteObject removes key on behalf of caller. The role check happens
// before any storage call. Deleting a missing key succeeds.
func (s *Service) DeleteObject(ctx context.Context, key string, caller auth.Identity) error {
	if !caller.IsAdmin() {
		s.logger.Warn(ctx, "delete rejected", "user_id", caller.UserID, "role", caller.Role)
		return fmt.Errorf("%w: user does not have 'admin' privileges", common.ErrForbidden)
	}

	if key == "" {
		return fmt.Errorf("%w: missing key", common.ErrInvalidRequest)
	}

	if err := s.gateway.Delete(ctx, key); err != nil {
		s.logger.Error(ctx, "delete error", "key", key, "error", err)
		return fmt.Errorf("%w: delete %q: %w", common.ErrStorageUnavailable, key, err)
	}

	s.logger.Info(ctx, "object deleted", "key", key, "user_id", caller.UserID)
	return nil
}

// Ping reports whether the storage backend is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.gateway.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}
