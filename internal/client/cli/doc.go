// Package cli implements the bucketdrop command line client: listing the
// bucket as a table or a folder tree, and uploading, downloading and
// deleting objects through signed URLs minted by the server.
package cli
