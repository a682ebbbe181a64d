// Package storage is the only place that talks to the S3-compatible object
// store. It lists and deletes objects and mints pre-signed PUT/GET requests.
package storage

import (
	"context"
	"net/http"
	"time"
)

// Object is one entry of a bucket listing as reported by storage.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ListResult is the outcome of a single listing call. NextToken is empty
// once the listing is exhausted.
type ListResult struct {
	Objects   []Object
	NextToken string
}

// PresignedRequest is a signed, time-limited request the caller can replay
// directly against storage.
type PresignedRequest struct {
	URL          string
	Method       string
	SignedHeader http.Header
	ExpiresAt    time.Time
}

// Gateway abstracts the bucket. Implementations must be safe for concurrent use.
type Gateway interface {
	// List returns at most limit objects starting after continuation token.
	List(ctx context.Context, token string, limit int) (ListResult, error)
	// PresignPut mints a PUT bound to key and contentType.
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (PresignedRequest, error)
	// PresignGet mints a GET for key.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (PresignedRequest, error)
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Ping checks that the bucket is reachable with the configured credentials.
	Ping(ctx context.Context) error
}
