// Package sensor defines the raw sample taken each polling cycle and the
// probe that gathers it from the four input ports.
package sensor

import (
	"fmt"

	"github.com/luki/plantmon/internal/hal"
)

// Sample is one polling cycle's raw readings. A fresh Sample is taken
// each cycle; nothing carries over between cycles.
type Sample struct {
	Moisture int  // soil moisture ADC, 0-1023
	Light    int  // photoresistor ADC, 0-1023
	TempRaw  int  // temperature ADC, 0-1023
	Motion   bool // PIR state
}

// Probe bundles the four input ports of one plant station.
type Probe struct {
	Moisture hal.AnalogReader
	Light    hal.AnalogReader
	Temp     hal.AnalogReader
	Motion   hal.DigitalReader
}

// Read takes one sample. The first failing port aborts the read; the
// partially filled sample is still returned so callers can carry on with
// zero values, which classify as ordinary low readings.
func (p Probe) Read() (Sample, error) {
	var s Sample
	var err error

	if s.Moisture, err = p.Moisture.Read(); err != nil {
		return s, fmt.Errorf("moisture: %w", err)
	}
	if s.Light, err = p.Light.Read(); err != nil {
		return s, fmt.Errorf("light: %w", err)
	}
	if s.TempRaw, err = p.Temp.Read(); err != nil {
		return s, fmt.Errorf("temperature: %w", err)
	}
	if s.Motion, err = p.Motion.Read(); err != nil {
		return s, fmt.Errorf("motion: %w", err)
	}
	return s, nil
}
