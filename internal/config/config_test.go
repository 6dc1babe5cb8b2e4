package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luki/plantmon/internal/status"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PLANTMON_BACKEND", "PLANTMON_POLL_INTERVAL", "PLANTMON_LOG_LEVEL",
		"PLANTMON_MOISTURE_LOW", "PLANTMON_TEMP_LOW", "PLANTMON_TEMP_HIGH",
		"PLANTMON_LIGHT_LOW", "PLANTMON_LIGHT_HIGH",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSim, cfg.Backend)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, status.Default(), cfg.Thresholds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLANTMON_BACKEND", "sysfs")
	t.Setenv("PLANTMON_POLL_INTERVAL", "500ms")
	t.Setenv("PLANTMON_MOISTURE_LOW", "40")
	t.Setenv("PLANTMON_LIGHT_HIGH", "90")
	t.Setenv("PLANTMON_ADC_MOISTURE", "/tmp/adc0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSysfs, cfg.Backend)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 40, cfg.Thresholds.MoistureLow)
	assert.Equal(t, 90, cfg.Thresholds.LightHigh)
	assert.Equal(t, 30, cfg.Thresholds.TempLow, "untouched thresholds keep defaults")
	assert.Equal(t, "/tmp/adc0", cfg.Sysfs.Moisture)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLANTMON_BACKEND", "firmata")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown backend")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unparsable interval", "PLANTMON_POLL_INTERVAL", "fast"},
		{"negative interval", "PLANTMON_POLL_INTERVAL", "-2s"},
		{"unparsable threshold", "PLANTMON_TEMP_LOW", "warm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsInvertedBands(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLANTMON_TEMP_LOW", "70")
	t.Setenv("PLANTMON_TEMP_HIGH", "40")

	_, err := Load()
	assert.ErrorContains(t, err, "inverted")
}
