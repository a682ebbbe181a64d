// Package api is the HTTP client for the bucketdrop server API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/common"
	"github.com/dmitrijs2005/bucketdrop/internal/models"
)

const DefaultTimeout = 30 * time.Second

// Error is a non-2xx answer from the server. It unwraps to the sentinel in
// internal/common matching its status code.
type Error struct {
	Status  int
	Message string
	Details string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s (%d): %s", msg, e.Status, e.Details)
	}
	return fmt.Sprintf("%s (%d)", msg, e.Status)
}

func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusBadRequest:
		return common.ErrInvalidRequest
	case e.Status == http.StatusUnauthorized:
		return common.ErrUnauthenticated
	case e.Status == http.StatusForbidden:
		return common.ErrForbidden
	case e.Status >= http.StatusInternalServerError:
		return common.ErrStorageUnavailable
	}
	return nil
}

type Client struct {
	baseURL   string
	authToken string
	client    *http.Client
}

// NewClient returns a client for the server at baseURL. A zero timeout
// means DefaultTimeout.
func NewClient(baseURL, authToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		client:    &http.Client{Timeout: timeout},
	}
}

// SetToken replaces the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.authToken = token
}

func (c *Client) List(ctx context.Context) ([]models.ObjectRecord, error) {
	var out []models.ObjectRecord
	if err := c.do(ctx, http.MethodGet, "/objects", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.ObjectRecord{}
	}
	return out, nil
}

func (c *Client) Page(ctx context.Context, cursor string) (models.ObjectPage, error) {
	path := "/objects/page"
	if cursor != "" {
		path += "?cursor=" + url.QueryEscape(cursor)
	}
	var out models.ObjectPage
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Presign(ctx context.Context, req models.PresignRequest) (models.PresignResponse, error) {
	var out models.PresignResponse
	err := c.do(ctx, http.MethodPost, "/objects/presign", req, &out)
	return out, err
}

func (c *Client) DownloadURL(ctx context.Context, key string) (models.DownloadResponse, error) {
	var out models.DownloadResponse
	err := c.do(ctx, http.MethodGet, "/objects/download?key="+url.QueryEscape(key), nil, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, key string) (models.DeleteResponse, error) {
	var out models.DeleteResponse
	err := c.do(ctx, http.MethodDelete, "/objects", models.DeleteRequest{File: models.FileRef{Key: key}}, &out)
	return out, err
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.authToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var er models.ErrorResponse
		if json.Unmarshal(data, &er) == nil {
			apiErr.Message = er.Error
			apiErr.Details = er.Details
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// Message returns the server-supplied message of err, or err's text when
// err did not come from the server.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
