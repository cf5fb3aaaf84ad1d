package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 50, cfg.MaxPages)
	require.Equal(t, 5, cfg.DefaultPages)
	require.Equal(t, 30*time.Minute, cfg.DatasetTTL)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: \":9000\"\nmax_pages: 10\nredis_url: \"cache:6379\"\n"), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("MAX_PAGES", "")
	t.Setenv("REDIS_URL", "localhost:6380")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddr)
	require.Equal(t, 10, cfg.MaxPages)
	require.Equal(t, "localhost:6380", cfg.RedisURL)
	require.Equal(t, 5, cfg.DefaultPages)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_pages: [oops"), 0o644))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
}

func TestLoadClampsPageBounds(t *testing.T) {
	testCases := []struct {
		maxPages, defaultPages string
		expectedMax            int
		expectedDefault        int
	}{
		{maxPages: "500", defaultPages: "", expectedMax: 50, expectedDefault: 5},
		{maxPages: "0", defaultPages: "80", expectedMax: 50, expectedDefault: 5},
		{maxPages: "3", defaultPages: "", expectedMax: 3, expectedDefault: 3},
		{maxPages: "20", defaultPages: "12", expectedMax: 20, expectedDefault: 12},
	}

	for _, tc := range testCases {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("MAX_PAGES", tc.maxPages)
		t.Setenv("DEFAULT_PAGES", tc.defaultPages)

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, tc.expectedMax, cfg.MaxPages, "MAX_PAGES=%s", tc.maxPages)
		require.Equal(t, tc.expectedDefault, cfg.DefaultPages, "MAX_PAGES=%s DEFAULT_PAGES=%s", tc.maxPages, tc.defaultPages)
	}
}
