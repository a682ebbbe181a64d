package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Empty(t, c.AuthToken)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "downloads", c.DownloadDir)
	assert.Equal(t, "slog", c.LogFormat)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"server_url":      "http://json:1",
		"request_timeout": "5s",
		"download_dir":    "from-json",
	})
	t.Setenv("BUCKETDROP_SERVER_URL", "http://env:2")
	t.Setenv("BUCKETDROP_AUTH_TOKEN", "tok")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env:2", cfg.ServerURL, "env beats json")
	assert.Equal(t, "tok", cfg.AuthToken)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout, "json beats defaults")
	assert.Equal(t, "from-json", cfg.DownloadDir)
	assert.Equal(t, "slog", cfg.LogFormat)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
