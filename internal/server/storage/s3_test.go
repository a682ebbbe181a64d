package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *s3.Client {
	return s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "SECRETEXAMPLE", ""),
		BaseEndpoint: aws.String(endpoint),
		UsePathStyle: true,
		Retryer:      aws.NopRetryer{},
	})
}

func TestNewS3Gateway_AppliesConfig(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "auto", lo.Region)
		require.NotNil(t, lo.Credentials)

		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "key", creds.AccessKeyID)
		assert.Equal(t, "secret", creds.SecretAccessKey)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	gw, err := NewS3Gateway(context.Background(), Config{
		Endpoint:        "https://account.r2.cloudflarestorage.com/",
		Region:          "auto",
		Bucket:          "files",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, gw)

	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "https://account.r2.cloudflarestorage.com", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "files", gw.bucket)
}

func TestNewS3Gateway_Errors(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	_, err := NewS3Gateway(context.Background(), Config{})
	require.Error(t, err)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err = NewS3Gateway(context.Background(), Config{Bucket: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load-fail")
}

func TestS3Gateway_PresignPut_Offline(t *testing.T) {
	gw := NewS3GatewayFromClient(newTestClient("http://127.0.0.1:9000"), "files")
	issued := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	gw.now = func() time.Time { return issued }

	req, err := gw.PresignPut(context.Background(), "docs/1700000000000-a.txt", "text/plain", 10*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, req.Method)
	assert.True(t, strings.HasPrefix(req.URL, "http://127.0.0.1:9000/files/docs/1700000000000-a.txt?"), req.URL)
	assert.Contains(t, req.URL, "X-Amz-Expires=600")
	assert.Contains(t, req.URL, "X-Amz-Signature=")
	assert.Contains(t, req.URL, "content-type")
	assert.Equal(t, issued.Add(10*time.Minute), req.ExpiresAt)
}

func TestS3Gateway_PresignGet_Offline(t *testing.T) {
	gw := NewS3GatewayFromClient(newTestClient("http://127.0.0.1:9000"), "files")

	req, err := gw.PresignGet(context.Background(), "a/b.txt", 5*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.True(t, strings.HasPrefix(req.URL, "http://127.0.0.1:9000/files/a/b.txt?"), req.URL)
	assert.Contains(t, req.URL, "X-Amz-Expires=300")
}

const listPage1 = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>files</Name>
  <KeyCount>2</KeyCount>
  <MaxKeys>2</MaxKeys>
  <IsTruncated>true</IsTruncated>
  <NextContinuationToken>next-token</NextContinuationToken>
  <Contents><Key>a/b.txt</Key><LastModified>2024-01-02T03:04:05.000Z</LastModified><Size>10</Size></Contents>
  <Contents><Key>c.txt</Key><LastModified>2024-01-03T03:04:05.000Z</LastModified><Size>0</Size></Contents>
</ListBucketResult>`

const listPage2 = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>files</Name>
  <KeyCount>1</KeyCount>
  <MaxKeys>2</MaxKeys>
  <IsTruncated>false</IsTruncated>
  <Contents><Key>d/e/f.bin</Key><LastModified>2024-01-04T03:04:05.000Z</LastModified><Size>42</Size></Contents>
</ListBucketResult>`

func TestS3Gateway_List_Pagination(t *testing.T) {
	var tokens []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("list-type"))
		assert.Equal(t, "2", r.URL.Query().Get("max-keys"))

		token := r.URL.Query().Get("continuation-token")
		tokens = append(tokens, token)

		w.Header().Set("Content-Type", "application/xml")
		if token == "" {
			fmt.Fprint(w, listPage1)
			return
		}
		fmt.Fprint(w, listPage2)
	}))
	defer srv.Close()

	gw := NewS3GatewayFromClient(newTestClient(srv.URL), "files")

	first, err := gw.List(context.Background(), "", 2)
	require.NoError(t, err)
	require.Len(t, first.Objects, 2)
	assert.Equal(t, "a/b.txt", first.Objects[0].Key)
	assert.Equal(t, int64(10), first.Objects[0].Size)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), first.Objects[0].LastModified.UTC())
	assert.Equal(t, "next-token", first.NextToken)

	second, err := gw.List(context.Background(), first.NextToken, 2)
	require.NoError(t, err)
	require.Len(t, second.Objects, 1)
	assert.Equal(t, "d/e/f.bin", second.Objects[0].Key)
	assert.Empty(t, second.NextToken)

	assert.Equal(t, []string{"", "next-token"}, tokens)
}

func TestS3Gateway_List_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
	}))
	defer srv.Close()

	gw := NewS3GatewayFromClient(newTestClient(srv.URL), "files")

	_, err := gw.List(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDenied")
}

func TestS3Gateway_DeleteAndPing(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodHead:
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	gw := NewS3GatewayFromClient(newTestClient(srv.URL), "files")

	require.NoError(t, gw.Delete(context.Background(), "a/b.txt"))
	require.NoError(t, gw.Ping(context.Background()))

	assert.Equal(t, []string{"DELETE /files/a/b.txt", "HEAD /files"}, calls)
}
