package config

import (
	"time"

	"github.com/dmitrijs2005/bucketdrop/internal/logging"
)

// Config holds runtime settings for the bucketdrop CLI.
type Config struct {
	ServerURL      string
	AuthToken      string
	RequestTimeout time.Duration
	DownloadDir    string
	LogFormat      string
}

// LoadDefaults populates c with defaults for a server on localhost.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.AuthToken = ""
	c.RequestTimeout = 30 * time.Second
	c.DownloadDir = "downloads"
	c.LogFormat = logging.FormatSlog
}

// Load applies defaults, then the JSON file at jsonPath (skipped when
// empty) and then the environment.
func Load(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, jsonPath); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}
