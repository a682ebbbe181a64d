// Package transfer drives the client side of uploads, downloads and
// deletes: it asks the server for a signed capability, moves the bytes
// directly against storage and keeps the displayed listing in step.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bucketdrop/internal/client/api"
	"github.com/dmitrijs2005/bucketdrop/internal/common"
	"github.com/dmitrijs2005/bucketdrop/internal/logging"
	"github.com/dmitrijs2005/bucketdrop/internal/models"
	"github.com/dmitrijs2005/bucketdrop/internal/netx"
)

var ErrInvalidTransition = errors.New("invalid upload state transition")

// API is the part of the server API the orchestrator needs.
type API interface {
	List(ctx context.Context) ([]models.ObjectRecord, error)
	Presign(ctx context.Context, req models.PresignRequest) (models.PresignResponse, error)
	DownloadURL(ctx context.Context, key string) (models.DownloadResponse, error)
	Delete(ctx context.Context, key string) (models.DeleteResponse, error)
}

// Notifier receives user-facing status messages.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// Upload is the state of a single two-phase upload.
type Upload struct {
	State       State
	FileName    string
	ContentType string
	Directory   string
	Key         string
	Err         error

	body io.Reader
	size int64
}

type Orchestrator struct {
	api      API
	http     *http.Client
	notifier Notifier
	logger   logging.Logger
	listing  *Listing

	mu     sync.Mutex
	upload *Upload
}

func NewOrchestrator(a API, httpClient *http.Client, n Notifier, l logging.Logger) *Orchestrator {
	return &Orchestrator{
		api:      a,
		http:     httpClient,
		notifier: n,
		logger:   l.With("module", "transfer"),
		listing:  &Listing{},
		upload:   &Upload{State: Idle},
	}
}

// Listing returns the displayed record set.
func (o *Orchestrator) Listing() *Listing {
	return o.listing
}

// Current returns a copy of the upload state.
func (o *Orchestrator) Current() Upload {
	o.mu.Lock()
	defer o.mu.Unlock()
	u := *o.upload
	u.body = nil
	return u
}

// Stage captures a local file as the next upload. name and contentType are
// the defaults shown for confirmation. Staging replaces a previous upload
// that already finished, but not one still pending.
func (o *Orchestrator) Stage(name, contentType string, body io.Reader, size int64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if st := o.upload.State; st != Idle && !st.Terminal() {
		return fmt.Errorf("%w: stage from %s", ErrInvalidTransition, st)
	}

	o.upload = &Upload{
		State:       Staged,
		FileName:    name,
		ContentType: contentType,
		body:        body,
		size:        size,
	}
	return nil
}

// Confirm sets the final file name and directory. Empty values keep the
// staged defaults for the name.
func (o *Orchestrator) Confirm(name, directory string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.upload.State != Staged {
		return fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, o.upload.State)
	}
	if strings.TrimSpace(name) != "" {
		o.upload.FileName = strings.TrimSpace(name)
	}
	o.upload.Directory = directory
	return nil
}

// Run performs the staged upload: mint a capability, PUT the body to it
// and, on success, refresh the listing from the server. Any failure leaves
// the upload in Failed, drops the staged body and does not refresh.
//
// The lock is held only while the state changes, so Current reports
// RequestingCapability and Transferring while the network calls run.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.mu.Lock()
	u := o.upload
	if u.State != Staged {
		o.mu.Unlock()
		return fmt.Errorf("%w: run from %s", ErrInvalidTransition, u.State)
	}
	u.State = RequestingCapability
	req := models.PresignRequest{
		FileName:  u.FileName,
		FileType:  u.ContentType,
		Directory: u.Directory,
	}
	contentType, body, size := u.ContentType, u.body, u.size
	o.mu.Unlock()

	o.notifier.Info(fmt.Sprintf("Requesting upload URL for %s...", req.FileName))

	capability, err := o.api.Presign(ctx, req)
	if err != nil {
		return o.fail(ctx, u, err, "Upload failed: "+api.Message(err))
	}

	o.mu.Lock()
	u.Key = capability.Key
	u.State = Transferring
	o.mu.Unlock()

	o.notifier.Info(fmt.Sprintf("Uploading %s...", capability.Key))

	if err := netx.UploadToPresignedURL(ctx, o.http, capability.UploadURL, contentType, body, size); err != nil {
		return o.fail(ctx, u, err, fmt.Sprintf("Upload of %s failed: %v", capability.Key, err))
	}

	o.mu.Lock()
	u.State = Done
	u.body = nil
	o.mu.Unlock()

	o.logger.Info(ctx, "upload done", "key", capability.Key)
	o.notifier.Success(fmt.Sprintf("Uploaded %s", capability.Key))

	if err := o.Refresh(ctx); err != nil {
		// the upload itself succeeded
		o.logger.Warn(ctx, "refresh after upload failed", "error", err)
	}
	return nil
}

func (o *Orchestrator) fail(ctx context.Context, u *Upload, err error, msg string) error {
	o.mu.Lock()
	u.State = Failed
	u.body = nil
	u.Err = fmt.Errorf("%w: %s: %w", common.ErrTransferFailed, u.describe(), err)
	name, key, uerr := u.FileName, u.Key, u.Err
	o.mu.Unlock()

	o.logger.Error(ctx, "upload failed", "file", name, "key", key, "error", err)
	o.notifier.Error(msg)
	return uerr
}

func (u *Upload) describe() string {
	if u.Key != "" {
		return u.Key
	}
	return u.FileName
}

// Refresh replaces the listing with a fresh server listing. On error the
// listing keeps its previous content.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	records, err := o.api.List(ctx)
	if err != nil {
		o.notifier.Error("Failed to list files: " + api.Message(err))
		return err
	}
	o.listing.Replace(records)
	return nil
}

// Download fetches the object at key into w through a freshly minted
// download URL.
func (o *Orchestrator) Download(ctx context.Context, key string, w io.Writer) (int64, error) {
	capability, err := o.api.DownloadURL(ctx, key)
	if err != nil {
		o.notifier.Error("Download failed: " + api.Message(err))
		return 0, err
	}

	n, err := netx.DownloadFromPresignedURL(ctx, o.http, capability.DownloadURL, w)
	if err != nil {
		o.notifier.Error(fmt.Sprintf("Download of %s failed: %v", key, err))
		return n, fmt.Errorf("%w: %s: %w", common.ErrTransferFailed, key, err)
	}

	o.notifier.Success(fmt.Sprintf("Downloaded %s (%d bytes)", key, n))
	return n, nil
}

// Delete removes key on the server and, only after the server confirmed,
// from the listing.
func (o *Orchestrator) Delete(ctx context.Context, key string) error {
	resp, err := o.api.Delete(ctx, key)
	if err != nil {
		o.notifier.Error("Delete failed: " + api.Message(err))
		return err
	}
	if !resp.Success {
		o.notifier.Error("Delete failed: " + key)
		return fmt.Errorf("%w: delete of %s not confirmed", common.ErrTransferFailed, key)
	}

	o.listing.Apply(func(records []models.ObjectRecord) []models.ObjectRecord {
		return RemoveByKey(records, key)
	})
	o.notifier.Success("Deleted " + key)
	return nil
}
