package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samgozman/fin-scraper/economist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the keys for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FRED_API_KEY", "FRED_BASE_URL", "HTTP_TIMEOUT", "SEC_USER_AGENT", "SENTRY_DSN", "LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	clearEnv(t)

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Empty(t, env.FredAPIKey)
	assert.Equal(t, economist.DefaultBaseURL, env.FredBaseURL)
	assert.Equal(t, 30*time.Second, env.HTTPTimeout)
	assert.Equal(t, "fin-scraper admin@example.com", env.SecUserAgent)
	assert.Equal(t, "warn", env.LogLevel)
}

func TestLoadEnv_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRED_API_KEY", "abc123")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "abc123", env.FredAPIKey)
	assert.Equal(t, 5*time.Second, env.HTTPTimeout)
	assert.Equal(t, "debug", env.LogLevel)
}

func TestLoadEnv_LogLevelCase(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", " DEBUG ")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", env.LogLevel)
}

func TestLoadEnv_DotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEC_USER_AGENT", "from-environment me@example.com")

	path := filepath.Join(t.TempDir(), ".env")
	content := "FRED_API_KEY=from-file\nSEC_USER_AGENT=from-file me@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	env, err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", env.FredAPIKey)
	assert.Equal(t, "from-environment me@example.com", env.SecUserAgent, "the environment wins over the file")
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "base url", key: "FRED_BASE_URL", value: "not a url"},
		{name: "timeout", key: "HTTP_TIMEOUT", value: "-1s"},
		{name: "sentry dsn", key: "SENTRY_DSN", value: "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func Test_parseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "ERROR", parseLogLevel("error").String())
	assert.Equal(t, "WARN", parseLogLevel("").String())
}
