package hal

import "math"

// SimAnalog produces a slow deterministic waveform around a base value,
// standing in for a real ADC channel on machines without the hardware.
// Each Read advances one step along a sine of the given period.
type SimAnalog struct {
	Base   int // midpoint of the waveform, in raw ADC counts
	Swing  int // peak deviation from Base
	Period int // steps per full oscillation
	Phase  int // initial step offset, so channels don't move in lockstep

	step int
}

// Read returns the next raw value, always within [0, 1023].
func (s *SimAnalog) Read() (int, error) {
	period := s.Period
	if period <= 0 {
		period = 60
	}
	t := float64(s.step+s.Phase) / float64(period)
	s.step++

	v := s.Base + int(float64(s.Swing)*math.Sin(2*math.Pi*t))
	if v < 0 {
		v = 0
	}
	if v > 1023 {
		v = 1023
	}
	return v, nil
}

// SimMotion reports motion for one read out of every Period reads,
// mimicking an occasional PIR trigger. Period <= 0 means never.
type SimMotion struct {
	Period int

	step int
}

// Read returns the next motion state.
func (s *SimMotion) Read() (bool, error) {
	if s.Period <= 0 {
		return false, nil
	}
	s.step++
	return s.step%s.Period == 0, nil
}
