// Package scale converts raw 10-bit ADC readings into the percent and
// Celsius values the classifier works with. Everything here is a pure
// function of its inputs and the fixed conversion constants.
package scale

import "github.com/luki/plantmon/internal/sensor"

const (
	// ADCMax is the full-scale count of the 10-bit converter.
	ADCMax = 1023

	// The Celsius band that maps onto 0-100%.
	celsiusLow  = 0.0
	celsiusHigh = 25.0
)

// Reading holds one cycle's scaled values.
type Reading struct {
	MoisturePct int
	LightPct    int
	TempPct     int
	Celsius     float64
}

// MapRange linearly interpolates x from [inMin,inMax] onto
// [outMin,outMax] with integer truncation.
func MapRange(x, inMin, inMax, outMin, outMax int) int {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Percent maps a raw ADC count onto 0-100. Out-of-range inputs clamp;
// a percent never wraps or leaves [0,100].
func Percent(raw int) int {
	return clamp(MapRange(raw, 0, ADCMax, 0, 100), 0, 100)
}

// Celsius converts a raw count from the temperature channel using the
// board's as-shipped transfer function: 0-5V reference scaled by 100.
// It reads implausibly hot for ambient air; kept bit-for-bit until the
// sensor is recalibrated rather than silently corrected here.
func Celsius(raw int) float64 {
	return (float64(raw) * 5.0 / 1024.0) * 100
}

// TempPercent maps Celsius in [0,25] onto 0-100. The conversion above
// can land far outside that band, so values clamp to 0 or 100.
func TempPercent(celsius float64) int {
	pct := int((celsius - celsiusLow) * 100 / (celsiusHigh - celsiusLow))
	return clamp(pct, 0, 100)
}

// Scale derives the full scaled reading for one raw sample.
func Scale(s sensor.Sample) Reading {
	c := Celsius(s.TempRaw)
	return Reading{
		MoisturePct: Percent(s.Moisture),
		LightPct:    Percent(s.Light),
		TempPct:     TempPercent(c),
		Celsius:     c,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
