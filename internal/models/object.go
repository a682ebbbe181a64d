// Package models defines the wire DTOs shared by the bucketdrop server and
// its clients.
package models

import "time"

// ObjectRecord describes one object of the bucket listing. It is never
// persisted: every list call rebuilds it from storage, and DownloadURL is
// only valid until its embedded expiry.
type ObjectRecord struct {
	// Key is the unique, slash-delimited object key.
	Key string `json:"key"`
	// Size is the object size in bytes.
	Size int64 `json:"size"`
	// LastModified is the storage-reported modification time.
	LastModified time.Time `json:"lastModified"`
	// DownloadURL is a pre-signed GET URL for the object.
	DownloadURL string `json:"downloadUrl"`
}

// ObjectPage is one page of a paginated listing. An empty NextCursor means
// the listing is exhausted.
type ObjectPage struct {
	Objects    []ObjectRecord `json:"objects"`
	NextCursor string         `json:"nextCursor"`
}

// PresignRequest asks for an upload capability.
//
// FileDirectory is accepted as an alias of Directory for older clients.
type PresignRequest struct {
	FileName      string `json:"fileName"`
	FileType      string `json:"fileType"`
	Directory     string `json:"directory,omitempty"`
	FileDirectory string `json:"fileDirectory,omitempty"`
}

// Dir returns the requested directory, preferring Directory over the alias.
func (r PresignRequest) Dir() string {
	if r.Directory != "" {
		return r.Directory
	}
	return r.FileDirectory
}

// PresignResponse carries a minted upload capability.
type PresignResponse struct {
	UploadURL string    `json:"uploadUrl"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DownloadResponse carries a minted download capability.
type DownloadResponse struct {
	DownloadURL string    `json:"downloadUrl"`
	Key         string    `json:"key"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// FileRef identifies an object inside DeleteRequest.
type FileRef struct {
	Key string `json:"key"`
}

// DeleteRequest is the body of DELETE /objects.
type DeleteRequest struct {
	File FileRef `json:"file"`
}

// DeleteResponse acknowledges a delete.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
