package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces all environment variables read by parseEnv,
// e.g. BUCKETDROP_S3_BUCKET.
const EnvPrefix = "BUCKETDROP"

// legacyEnv maps config keys to the R2_* variable names used by earlier
// deployments. The prefixed name takes precedence when both are set.
var legacyEnv = map[string]string{
	"s3_base_endpoint":     "R2_ENDPOINT",
	"s3_access_key_id":     "R2_ACCESS_KEY_ID",
	"s3_secret_access_key": "R2_SECRET_ACCESS_KEY",
	"s3_bucket":            "R2_BUCKET",
}

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		_ = v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(key), legacy)
	}

	return v
}

// parseEnv overlays Config with values from the process environment.
// Durations accept Go duration strings ("10m", "30s").
func parseEnv(config *Config) {
	v := newEnvViper()

	if v.IsSet("endpoint_addr_http") {
		config.EndpointAddrHTTP = v.GetString("endpoint_addr_http")
	}
	if v.IsSet("endpoint_addr_grpc") {
		config.EndpointAddrGRPC = v.GetString("endpoint_addr_grpc")
	}
	if v.IsSet("secret_key") {
		config.SecretKey = v.GetString("secret_key")
	}
	if v.IsSet("s3_access_key_id") {
		config.S3AccessKeyID = v.GetString("s3_access_key_id")
	}
	if v.IsSet("s3_secret_access_key") {
		config.S3SecretAccessKey = v.GetString("s3_secret_access_key")
	}
	if v.IsSet("s3_bucket") {
		config.S3Bucket = v.GetString("s3_bucket")
	}
	if v.IsSet("s3_region") {
		config.S3Region = v.GetString("s3_region")
	}
	if v.IsSet("s3_base_endpoint") {
		config.S3BaseEndpoint = v.GetString("s3_base_endpoint")
	}
	if v.IsSet("s3_use_path_style") {
		config.S3UsePathStyle = v.GetBool("s3_use_path_style")
	}
	if v.IsSet("upload_url_ttl") {
		config.UploadURLTTL = v.GetDuration("upload_url_ttl")
	}
	if v.IsSet("download_url_ttl") {
		config.DownloadURLTTL = v.GetDuration("download_url_ttl")
	}
	if v.IsSet("list_page_size") {
		config.ListPageSize = v.GetInt("list_page_size")
	}
	if v.IsSet("require_auth") {
		config.RequireAuth = v.GetBool("require_auth")
	}
	if v.IsSet("log_format") {
		config.LogFormat = v.GetString("log_format")
	}
	if v.IsSet("health_check_interval") {
		config.HealthCheckInterval = v.GetDuration("health_check_interval")
	}
}
