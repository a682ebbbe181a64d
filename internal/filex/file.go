// Package filex handles the local side of transfers: opening a file to
// stage for upload and creating the target for a download.
package filex

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const sniffLen = 512

// ErrUnsafeKey is returned when an object key would escape the download
// directory.
var ErrUnsafeKey = errors.New("object key escapes target directory")

// LocalFile is an opened file with the defaults an upload is staged with.
type LocalFile struct {
	*os.File
	Name        string
	ContentType string
	Size        int64
}

// OpenLocal opens p for reading. Name defaults to the base name and
// ContentType is taken from the extension, or sniffed from the content when
// the extension is unknown.
func OpenLocal(p string) (*LocalFile, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s is a directory", p)
	}

	ct, err := detectContentType(f, filepath.Ext(p))
	if err != nil {
		f.Close()
		return nil, err
	}

	return &LocalFile{File: f, Name: filepath.Base(p), ContentType: ct, Size: fi.Size()}, nil
}

func detectContentType(f *os.File, ext string) (string, error) {
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct, nil
	}

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := dirName
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// TargetPath maps an object key onto a path below dir, keeping the key's
// folders.
func TargetPath(dir, key string) (string, error) {
	clean := path.Clean("/" + key)
	if key == "" || strings.HasSuffix(key, "/") || clean == "/" {
		return "", fmt.Errorf("%w: %q", ErrUnsafeKey, key)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrUnsafeKey, key)
		}
	}
	return filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

// CreateTarget creates (or truncates) the file for key below dir, along
// with any folders the key implies.
func CreateTarget(dir, key string) (*os.File, error) {
	p, err := TargetPath(dir, key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(p), err)
	}
	return os.Create(p)
}
