package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sundaypay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.60, cfg.Rates.Enhancement)
	assert.Equal(t, 12.0, cfg.Rates.ContractedSundayHours)
	assert.Equal(t, 10.5, cfg.Defaults.BankSundayHours)
	assert.Equal(t, "Band 6", cfg.Defaults.Band)
	assert.Equal(t, 22, cfg.Staffing.AffectedFTE)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SUNDAYPAY_LOG_LEVEL", "")

	path := writeConfig(t, `
rates:
  enhancement: 0.5
defaults:
  weekly_hours: 30
bands:
  - name: Band 5
    points:
      Entry: 15.5
    bank_sun_rate: 33
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Rates.Enhancement)
	assert.Equal(t, 12.0, cfg.Rates.ContractedSundayHours, "unset keys keep defaults")
	assert.Equal(t, 30.0, cfg.Defaults.WeeklyHours)
	assert.Equal(t, 10.5, cfg.Defaults.BankSundayHours)
	require.Len(t, cfg.Bands, 1)
	assert.Equal(t, 15.5, cfg.Bands[0].Points["Entry"])
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("SUNDAYPAY_LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, "server:\n  port: \"7000\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Server.Level())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingImplicitFileUsesDefaults(t *testing.T) {
	t.Setenv("SUNDAYPAY_CONFIG", "")
	t.Setenv("PORT", "")
	{
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })
	} // t.Chdir requires Go 1.24

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "rates: [not, a, map"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_RejectsBadRates(t *testing.T) {
	_, err := Load(writeConfig(t, "rates:\n  contracted_sunday_hours: 0\n"))
	assert.ErrorContains(t, err, "contracted_sunday_hours")

	_, err = Load(writeConfig(t, "defaults:\n  deduction_model: scottish\n"))
	assert.ErrorContains(t, err, "deduction_model")
}

func TestServerLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelInfo, Server{}.Level())
	assert.Equal(t, slog.LevelWarn, Server{LogLevel: "WARN"}.Level())
	assert.Equal(t, slog.LevelError, Server{LogLevel: "error"}.Level())
}
