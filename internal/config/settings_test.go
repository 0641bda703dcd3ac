package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearSettingsEnv blanks every settings variable so defaults apply
// regardless of what the outer environment carries.
func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "MON_PORT", "ENABLE_PPROF", "LOG_LEVEL", "SERVICE_NAME", "DIGISTORE_API_KEY"} {
		t.Setenv(key, "")
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	clearSettingsEnv(t)

	settings, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, 5000, settings.Port)
	assert.Equal(t, 8888, settings.MonPort)
	assert.False(t, settings.EnablePprof)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, "digistore24-webhook", settings.ServiceName)
	assert.Empty(t, settings.DigistoreAPIKey)
}

func TestLoadSettings_Environment(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("PORT", "6001")
	t.Setenv("ENABLE_PPROF", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DIGISTORE_API_KEY", "test-api-key")

	settings, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, 6001, settings.Port)
	assert.True(t, settings.EnablePprof)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "test-api-key", settings.DigistoreAPIKey)
}

func TestLoadSettings_EnvFile(t *testing.T) {
	clearSettingsEnv(t)
	// godotenv never overrides variables that are already set, so the
	// one under test must be absent entirely.
	os.Unsetenv("DIGISTORE_API_KEY")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DIGISTORE_API_KEY=file-api-key\n"), 0o600))

	settings, err := LoadSettings(envFile)
	require.NoError(t, err)
	assert.Equal(t, "file-api-key", settings.DigistoreAPIKey)
}

func TestLoadSettings_MissingEnvFile(t *testing.T) {
	clearSettingsEnv(t)

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.NoError(t, err)
	assert.Equal(t, 5000, settings.Port)
}

func TestLoadSettings_InvalidValue(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("PORT", "not-a-port")

	_, err := LoadSettings("")
	assert.Error(t, err)
}
