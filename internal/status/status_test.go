package status

import "testing"

func TestClassifyPriorityOrder(t *testing.T) {
	def := Default()

	tests := []struct {
		name     string
		motion   bool
		moisture int
		temp     int
		light    int
		want     Status
	}{
		{"motion wins over everything", true, 0, 0, 0, MotionDetected},
		{"motion wins over healthy env", true, 80, 45, 50, MotionDetected},
		{"need water", false, 10, 45, 50, NeedWater},
		{"water outranks temperature", false, 10, 0, 0, NeedWater},
		{"too cold", false, 50, 29, 50, TooCold},
		{"cold outranks light", false, 50, 0, 0, TooCold},
		{"too hot", false, 50, 61, 50, TooHot},
		{"too dark", false, 50, 45, 29, TooDark},
		{"too bright", false, 50, 45, 71, TooBright},
		{"all good", false, 50, 45, 50, AllGood},
		{"boundaries are inclusive-safe", false, 30, 30, 30, AllGood},
		{"upper boundaries are inclusive-safe", false, 100, 60, 70, AllGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.motion, tt.moisture, tt.temp, tt.light, def)
			if got != tt.want {
				t.Errorf("Classify(%v, %d, %d, %d) = %v, want %v",
					tt.motion, tt.moisture, tt.temp, tt.light, got, tt.want)
			}
		})
	}
}

func TestClassifyTotalAndIdempotent(t *testing.T) {
	def := Default()
	pcts := []int{0, 10, 29, 30, 31, 59, 60, 61, 69, 70, 71, 100}

	for _, motion := range []bool{false, true} {
		for _, m := range pcts {
			for _, tp := range pcts {
				for _, l := range pcts {
					got := Classify(motion, m, tp, l, def)
					if got < MotionDetected || got > AllGood {
						t.Fatalf("Classify(%v, %d, %d, %d) = %d, not a defined status",
							motion, m, tp, l, got)
					}
					again := Classify(motion, m, tp, l, def)
					if got != again {
						t.Fatalf("Classify not idempotent for (%v, %d, %d, %d): %v then %v",
							motion, m, tp, l, got, again)
					}
				}
			}
		}
	}
}

func TestClassifyInjectedThresholds(t *testing.T) {
	tight := Thresholds{MoistureLow: 50, TempLow: 40, TempHigh: 50, LightLow: 40, LightHigh: 60}

	if got := Classify(false, 49, 45, 50, tight); got != NeedWater {
		t.Errorf("moisture 49 under tight thresholds: got %v, want NeedWater", got)
	}
	if got := Classify(false, 50, 45, 50, tight); got != AllGood {
		t.Errorf("moisture 50 under tight thresholds: got %v, want AllGood", got)
	}
}

func TestNeedsAttentionExcludesMotion(t *testing.T) {
	def := Default()

	// A healthy environment never needs attention; motion is not part
	// of the red/green decision at all.
	if NeedsAttention(50, 45, 50, def) {
		t.Error("healthy readings flagged for attention")
	}
	if !NeedsAttention(10, 45, 50, def) {
		t.Error("dry soil not flagged for attention")
	}
	if !NeedsAttention(50, 61, 50, def) {
		t.Error("hot reading not flagged for attention")
	}
	if !NeedsAttention(50, 45, 71, def) {
		t.Error("bright reading not flagged for attention")
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		st    Status
		line0 string
		line1 string
	}{
		{MotionDetected, "MOTION DETECTED", "CHECK AREA"},
		{NeedWater, "NEED WATER", "CHECK PLANT"},
		{TooCold, "TOO COLD", "CHECK PLANT"},
		{TooHot, "TOO HOT", "CHECK PLANT"},
		{TooDark, "TOO DARK", "CHECK PLANT"},
		{TooBright, "TOO BRIGHT", "CHECK PLANT"},
		{AllGood, "ALL GOOD", "SYSTEM OK"},
	}
	for _, tt := range tests {
		l0, l1 := Lines(tt.st)
		if l0 != tt.line0 || l1 != tt.line1 {
			t.Errorf("Lines(%v) = (%q, %q), want (%q, %q)", tt.st, l0, l1, tt.line0, tt.line1)
		}
	}
}

func TestStatusString(t *testing.T) {
	if got := TooBright.String(); got != "TOO BRIGHT" {
		t.Errorf("TooBright.String() = %q", got)
	}
	if got := Status(42).String(); got != "UNKNOWN" {
		t.Errorf("Status(42).String() = %q, want UNKNOWN", got)
	}
}
