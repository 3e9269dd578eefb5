package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		Port    int           `koanf:"port"    validate:"min=1,max=65535"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"server"`
	Log struct {
		Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	} `koanf:"log"`
}

func (c *testConfig) Validate() error {
	if c.Server.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

func defaults() map[string]any {
	return map[string]any{
		"server.port":    5001,
		"server.timeout": "5s",
		"log.level":      "info",
	}
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(".", name), []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	// given
	t.Chdir(t.TempDir())

	// when
	cfg, err := Load[*testConfig]("catalog", defaults())

	// then
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Precedence(t *testing.T) {
	// given
	t.Chdir(t.TempDir())
	writeFile(t, "config.yaml", "server:\n  port: 6000\n  timeout: 7s\nlog:\n  level: warn\n")
	writeFile(t, ".env", "CATALOG_SERVER_PORT=7000\nCATALOG_LOG_LEVEL=error\n")
	t.Setenv("CATALOG_SERVER_PORT", "8000")

	// when
	cfg, err := Load[*testConfig]("catalog", defaults())

	// then
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port, "process env wins")
	assert.Equal(t, "error", cfg.Log.Level, ".env beats config.yaml")
	assert.Equal(t, 7*time.Second, cfg.Server.Timeout, "config.yaml beats defaults")
}

func TestLoad_IgnoresForeignPrefix(t *testing.T) {
	// given
	t.Chdir(t.TempDir())
	t.Setenv("OTHER_SERVER_PORT", "9000")

	// when
	cfg, err := Load[*testConfig]("catalog", defaults())

	// then
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Server.Port)
}

func TestLoad_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"CATALOG_SERVER_PORT": "70000"}},
		{name: "unknown log level", env: map[string]string{"CATALOG_LOG_LEVEL": "verbose"}},
		{name: "cross-field rule", env: map[string]string{"CATALOG_SERVER_TIMEOUT": "0s"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			t.Chdir(t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			// when
			_, err := Load[*testConfig]("catalog", defaults())

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_UnmarshalError(t *testing.T) {
	// given
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_SERVER_PORT", "not-a-number")

	// when
	_, err := Load[*testConfig]("catalog", defaults())

	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error unmarshalling config")
}
