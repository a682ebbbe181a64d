// Package common defines shared constants and sentinel errors used across
// client and server layers of bucketdrop. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Request validation errors (400).
	ErrInvalidRequest = errors.New("invalid request")

	// Caller identity errors (401 / 403).
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")

	// Backend failures while listing, minting or deleting (500).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// The direct PUT/GET against a signed URL failed.
	ErrTransferFailed = errors.New("transfer failed")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
