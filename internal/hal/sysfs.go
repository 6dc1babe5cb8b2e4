package hal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// IIOChannel reads a raw ADC value from a Linux industrial-I/O voltage
// channel, e.g. /sys/bus/iio/devices/iio:device0/in_voltage0_raw.
type IIOChannel struct {
	Path string
}

// Read returns the channel's current raw value.
func (c IIOChannel) Read() (int, error) {
	b, err := os.ReadFile(c.Path)
	if err != nil {
		return 0, fmt.Errorf("read adc %s: %w", c.Path, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0, fmt.Errorf("parse adc %s: %w", c.Path, err)
	}
	return v, nil
}

// GPIOInput reads a sysfs GPIO value file ("0" or "1").
type GPIOInput struct {
	Path string
}

// Read returns true when the pin is high.
func (g GPIOInput) Read() (bool, error) {
	b, err := os.ReadFile(g.Path)
	if err != nil {
		return false, fmt.Errorf("read gpio %s: %w", g.Path, err)
	}
	return strings.TrimSpace(string(b)) == "1", nil
}

// GPIOOutput drives a sysfs GPIO value file.
type GPIOOutput struct {
	Path string
}

// Set writes the pin level.
func (g GPIOOutput) Set(on bool) error {
	v := "0"
	if on {
		v = "1"
	}
	if err := os.WriteFile(g.Path, []byte(v), 0644); err != nil {
		return fmt.Errorf("write gpio %s: %w", g.Path, err)
	}
	return nil
}
