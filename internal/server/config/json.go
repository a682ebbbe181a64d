package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bucketdrop/internal/flagx"
	"github.com/dmitrijs2005/bucketdrop/internal/timex"
)

// JsonConfig is a DTO used only for reading JSON configuration files.
// Durations use timex.Duration so they can be written as "10m" or as integer
// nanoseconds. Pointer booleans distinguish "false" from "absent".
type JsonConfig struct {
	EndpointAddrHTTP    string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC    string         `json:"endpoint_addr_grpc"`
	SecretKey           string         `json:"secret_key"`
	S3AccessKeyID       string         `json:"s3_access_key_id"`
	S3SecretAccessKey   string         `json:"s3_secret_access_key"`
	S3Bucket            string         `json:"s3_bucket"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
	S3UsePathStyle      *bool          `json:"s3_use_path_style"`
	UploadURLTTL        timex.Duration `json:"upload_url_ttl"`
	DownloadURLTTL      timex.Duration `json:"download_url_ttl"`
	ListPageSize        int            `json:"list_page_size"`
	RequireAuth         *bool          `json:"require_auth"`
	LogFormat           string         `json:"log_format"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags. If neither
// is set, nothing is loaded. Only fields present (non-zero) in the file
// overwrite the current values. A file that cannot be read or parsed causes
// a panic.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3AccessKeyID, c.S3AccessKeyID)
	setString(&config.S3SecretAccessKey, c.S3SecretAccessKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogFormat, c.LogFormat)

	if c.S3UsePathStyle != nil {
		config.S3UsePathStyle = *c.S3UsePathStyle
	}
	if c.RequireAuth != nil {
		config.RequireAuth = *c.RequireAuth
	}
	if c.ListPageSize > 0 {
		config.ListPageSize = c.ListPageSize
	}
	if c.UploadURLTTL.Duration > 0 {
		config.UploadURLTTL = c.UploadURLTTL.Duration
	}
	if c.DownloadURLTTL.Duration > 0 {
		config.DownloadURLTTL = c.DownloadURLTTL.Duration
	}
	if c.HealthCheckInterval.Duration > 0 {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
