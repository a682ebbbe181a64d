// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/logging"
)

// Config holds runtime settings for the bucketdrop server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the JSON API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - SecretKey: HMAC secret used to verify bearer JWTs (HS256).
//   - S3AccessKeyID / S3SecretAccessKey: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint / S3UsePathStyle: object storage settings.
//   - UploadURLTTL / DownloadURLTTL: lifetime of minted PUT / GET URLs.
//   - ListPageSize: max keys requested per ListObjectsV2 call.
//   - RequireAuth: when set, list and presign also need a valid bearer token.
//   - LogFormat: "slog" or "zerolog".
//   - HealthCheckInterval: how often the storage backend is probed.
type Config struct {
	EndpointAddrHTTP    string
	EndpointAddrGRPC    string
	SecretKey           string
	S3AccessKeyID       string
	S3SecretAccessKey   string
	S3Bucket            string
	S3Region            string
	S3BaseEndpoint      string
	S3UsePathStyle      bool
	UploadURLTTL        time.Duration
	DownloadURLTTL      time.Duration
	ListPageSize        int
	RequireAuth         bool
	LogFormat           string
	HealthCheckInterval time.Duration
}

// LoadDefaults populates Config with development defaults targeting a
// local MinIO. NOTE: the secrets are insecure and must be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = "secretKey"
	c.S3AccessKeyID = "admin"
	c.S3SecretAccessKey = "secretpassword"
	c.S3Bucket = "files"
	c.S3Region = "auto"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3UsePathStyle = true
	c.UploadURLTTL = 10 * time.Minute
	c.DownloadURLTTL = 10 * time.Minute
	c.ListPageSize = 1000
	c.RequireAuth = false
	c.LogFormat = logging.FormatSlog
	c.HealthCheckInterval = 30 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
