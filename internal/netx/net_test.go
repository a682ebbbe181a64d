package netx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUploadToPresignedURL(t *testing.T) {
	file := []byte("hello, s3")

	t.Run("success 200 OK", func(t *testing.T) {
		var gotBody []byte
		var gotCT string
		var gotMethod string
		var gotLen int64

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotLen = r.ContentLength
			body, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			gotBody = body
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		err := UploadToPresignedURL(context.Background(), ts.Client(), ts.URL+"/some/presigned?X-Amz-Signature=abc",
			"text/plain", bytes.NewReader(file), int64(len(file)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPut {
			t.Fatalf("method = %q, want PUT", gotMethod)
		}
		if gotCT != "text/plain" {
			t.Fatalf("Content-Type = %q, want text/plain", gotCT)
		}
		if gotLen != int64(len(file)) {
			t.Fatalf("Content-Length = %d, want %d", gotLen, len(file))
		}
		if !bytes.Equal(gotBody, file) {
			t.Fatalf("body mismatch: got %q want %q", string(gotBody), string(file))
		}
	})

	t.Run("empty content type defaults to octet-stream", func(t *testing.T) {
		var gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCT = r.Header.Get("Content-Type")
		}))
		defer ts.Close()

		if err := UploadToPresignedURL(context.Background(), nil, ts.URL, "", bytes.NewReader(file), -1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotCT != "application/octet-stream" {
			t.Fatalf("Content-Type = %q", gotCT)
		}
	})

	t.Run("non-2xx returns StatusError with body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("<Error><Code>SignatureDoesNotMatch</Code></Error>"))
		}))
		defer ts.Close()

		err := UploadToPresignedURL(context.Background(), nil, ts.URL, "text/plain", bytes.NewReader(file), int64(len(file)))
		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("expected *StatusError, got %v", err)
		}
		if se.Code != http.StatusForbidden {
			t.Fatalf("code = %d", se.Code)
		}
		if !strings.Contains(err.Error(), "SignatureDoesNotMatch") {
			t.Fatalf("error does not contain body: %v", err)
		}
	})

	t.Run("bad url", func(t *testing.T) {
		err := UploadToPresignedURL(context.Background(), nil, "http://[::1", "", bytes.NewReader(file), 0)
		if err == nil {
			t.Fatal("expected error for malformed url")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := UploadToPresignedURL(ctx, nil, ts.URL, "", bytes.NewReader(file), 0); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestDownloadFromPresignedURL(t *testing.T) {
	t.Run("copies body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("method = %q", r.Method)
			}
			_, _ = w.Write([]byte("payload"))
		}))
		defer ts.Close()

		var buf bytes.Buffer
		n, err := DownloadFromPresignedURL(context.Background(), ts.Client(), ts.URL, &buf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 7 || buf.String() != "payload" {
			t.Fatalf("got %d %q", n, buf.String())
		}
	})

	t.Run("expired url", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("Request has expired"))
		}))
		defer ts.Close()

		var buf bytes.Buffer
		_, err := DownloadFromPresignedURL(context.Background(), nil, ts.URL, &buf)
		var se *StatusError
		if !errors.As(err, &se) || se.Code != http.StatusForbidden {
			t.Fatalf("expected 403 StatusError, got %v", err)
		}
		if buf.Len() != 0 {
			t.Fatalf("nothing should be written on failure")
		}
	})
}

func TestNewTransferClient_NoOverallTimeout(t *testing.T) {
	c := NewTransferClient()
	if c.Timeout != 0 {
		t.Fatalf("Timeout = %v, want 0", c.Timeout)
	}
	if c.Transport == nil {
		t.Fatal("Transport is nil")
	}
}
