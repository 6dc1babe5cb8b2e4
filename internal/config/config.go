// Package config loads runtime settings from the environment. Everything
// has a working default: with no environment at all the monitor runs the
// simulated plant at the stock thresholds.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/luki/plantmon/internal/status"
)

// Backends selectable via PLANTMON_BACKEND.
const (
	BackendSim   = "sim"
	BackendSysfs = "sysfs"
)

// Config is the process-wide configuration, fixed once loaded.
type Config struct {
	Backend      string
	PollInterval time.Duration
	Thresholds   status.Thresholds

	// Sysfs paths, used only with BackendSysfs.
	Sysfs struct {
		Moisture string
		Light    string
		Temp     string
		Motion   string
		Red      string
		Green    string
		Orange   string
	}

	Log struct {
		Level string
	}
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Backend = getEnv("PLANTMON_BACKEND", BackendSim)
	if cfg.Backend != BackendSim && cfg.Backend != BackendSysfs {
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	interval, err := getDuration("PLANTMON_POLL_INTERVAL", 2*time.Second)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", interval)
	}
	cfg.PollInterval = interval

	t := status.Default()
	if t.MoistureLow, err = getInt("PLANTMON_MOISTURE_LOW", t.MoistureLow); err != nil {
		return nil, err
	}
	if t.TempLow, err = getInt("PLANTMON_TEMP_LOW", t.TempLow); err != nil {
		return nil, err
	}
	if t.TempHigh, err = getInt("PLANTMON_TEMP_HIGH", t.TempHigh); err != nil {
		return nil, err
	}
	if t.LightLow, err = getInt("PLANTMON_LIGHT_LOW", t.LightLow); err != nil {
		return nil, err
	}
	if t.LightHigh, err = getInt("PLANTMON_LIGHT_HIGH", t.LightHigh); err != nil {
		return nil, err
	}
	if t.TempLow > t.TempHigh {
		return nil, fmt.Errorf("temp thresholds inverted: low %d > high %d", t.TempLow, t.TempHigh)
	}
	if t.LightLow > t.LightHigh {
		return nil, fmt.Errorf("light thresholds inverted: low %d > high %d", t.LightLow, t.LightHigh)
	}
	cfg.Thresholds = t

	cfg.Sysfs.Moisture = getEnv("PLANTMON_ADC_MOISTURE", "/sys/bus/iio/devices/iio:device0/in_voltage0_raw")
	cfg.Sysfs.Light = getEnv("PLANTMON_ADC_LIGHT", "/sys/bus/iio/devices/iio:device0/in_voltage1_raw")
	cfg.Sysfs.Temp = getEnv("PLANTMON_ADC_TEMP", "/sys/bus/iio/devices/iio:device0/in_voltage2_raw")
	cfg.Sysfs.Motion = getEnv("PLANTMON_GPIO_MOTION", "/sys/class/gpio/gpio17/value")
	cfg.Sysfs.Red = getEnv("PLANTMON_GPIO_RED", "/sys/class/gpio/gpio22/value")
	cfg.Sysfs.Green = getEnv("PLANTMON_GPIO_GREEN", "/sys/class/gpio/gpio23/value")
	cfg.Sysfs.Orange = getEnv("PLANTMON_GPIO_ORANGE", "/sys/class/gpio/gpio24/value")

	cfg.Log.Level = getEnv("PLANTMON_LOG_LEVEL", "info")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
