package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-g string     gRPC health bind address (e.g., ":50051")
//	-s string     JWT HMAC secret key
//	-u string     S3 access key id
//	-p string     S3 secret access key
//	-b string     S3 bucket name
//	-r string     S3 region ("auto" for R2)
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-path-style   use path-style bucket addressing (bool, use -path-style=false to disable)
//	-ut int       upload URL validity, seconds
//	-dt int       download URL validity, seconds
//	-n int        keys per listing page
//	-require-auth require a bearer token for list and presign (bool)
//	-l string     log format: slog | zerolog
//	-hi int       storage health probe interval, seconds
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-g", "-s", "-u", "-p", "-b", "-r", "-e", "-ut", "-dt", "-n", "-l", "-hi"},
		"-path-style", "-require-auth")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP API")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC health endpoint")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	fs.StringVar(&config.S3AccessKeyID, "u", config.S3AccessKeyID, "S3 access key id")
	fs.StringVar(&config.S3SecretAccessKey, "p", config.S3SecretAccessKey, "S3 secret access key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.BoolVar(&config.S3UsePathStyle, "path-style", config.S3UsePathStyle, "use path-style addressing")

	uploadTTL := fs.Int("ut", int(config.UploadURLTTL.Seconds()), "upload URL validity (in seconds)")
	downloadTTL := fs.Int("dt", int(config.DownloadURLTTL.Seconds()), "download URL validity (in seconds)")
	fs.IntVar(&config.ListPageSize, "n", config.ListPageSize, "keys per listing page")
	fs.BoolVar(&config.RequireAuth, "require-auth", config.RequireAuth, "require bearer token for list and presign")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format (slog|zerolog)")
	healthInterval := fs.Int("hi", int(config.HealthCheckInterval.Seconds()), "storage health probe interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.UploadURLTTL = time.Duration(*uploadTTL) * time.Second
	config.DownloadURLTTL = time.Duration(*downloadTTL) * time.Second
	config.HealthCheckInterval = time.Duration(*healthInterval) * time.Second
}
