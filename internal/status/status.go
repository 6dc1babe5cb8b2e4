// Package status implements the plant-health classification policy: an
// ordered threshold chain mapping one cycle's scaled readings to exactly
// one of seven states.
package status

// Status is the classified plant state for one cycle.
type Status int

const (
	MotionDetected Status = iota
	NeedWater
	TooCold
	TooHot
	TooDark
	TooBright
	AllGood
)

var labels = [...]string{
	MotionDetected: "MOTION DETECTED",
	NeedWater:      "NEED WATER",
	TooCold:        "TOO COLD",
	TooHot:         "TOO HOT",
	TooDark:        "TOO DARK",
	TooBright:      "TOO BRIGHT",
	AllGood:        "ALL GOOD",
}

// String returns the display label for the status.
func (s Status) String() string {
	if s < 0 || int(s) >= len(labels) {
		return "UNKNOWN"
	}
	return labels[s]
}

// Thresholds are the safe bands, in percent. They are loaded once at
// startup and fixed for the life of the process.
type Thresholds struct {
	MoistureLow int
	TempLow     int
	TempHigh    int
	LightLow    int
	LightHigh   int
}

// Default returns the stock thresholds.
func Default() Thresholds {
	return Thresholds{
		MoistureLow: 30,
		TempLow:     30,
		TempHigh:    60,
		LightLow:    30,
		LightHigh:   70,
	}
}

// Classify maps one cycle's readings to a status. The chain is ordered
// and short-circuits: motion outranks everything, then moisture, then
// temperature, then light. First match wins; every input tuple maps to
// exactly one status.
func Classify(motion bool, moisturePct, tempPct, lightPct int, t Thresholds) Status {
	switch {
	case motion:
		return MotionDetected
	case moisturePct < t.MoistureLow:
		return NeedWater
	case tempPct < t.TempLow:
		return TooCold
	case tempPct > t.TempHigh:
		return TooHot
	case lightPct < t.LightLow:
		return TooDark
	case lightPct > t.LightHigh:
		return TooBright
	default:
		return AllGood
	}
}

// NeedsAttention reports whether any environmental reading is outside
// its safe band. Motion is excluded: it drives the orange lamp, not the
// red/green pair.
func NeedsAttention(moisturePct, tempPct, lightPct int, t Thresholds) bool {
	return moisturePct < t.MoistureLow ||
		tempPct < t.TempLow || tempPct > t.TempHigh ||
		lightPct < t.LightLow || lightPct > t.LightHigh
}

// Lines returns the fixed two-line display text for a status.
func Lines(s Status) (string, string) {
	switch s {
	case MotionDetected:
		return "MOTION DETECTED", "CHECK AREA"
	case NeedWater:
		return "NEED WATER", "CHECK PLANT"
	case TooCold:
		return "TOO COLD", "CHECK PLANT"
	case TooHot:
		return "TOO HOT", "CHECK PLANT"
	case TooDark:
		return "TOO DARK", "CHECK PLANT"
	case TooBright:
		return "TOO BRIGHT", "CHECK PLANT"
	default:
		return "ALL GOOD", "SYSTEM OK"
	}
}
