// Package report formats the per-cycle serial log entry: the percentages,
// the Celsius temperature, motion state, the status line, and the footer
// naming the ideal ranges.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/luki/plantmon/internal/scale"
	"github.com/luki/plantmon/internal/sensor"
	"github.com/luki/plantmon/internal/status"
)

// Render builds one cycle's report. Emitted every cycle, never
// suppressed.
func Render(s sensor.Sample, r scale.Reading, st status.Status, t status.Thresholds) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Moisture: %d%%\n", r.MoisturePct)
	fmt.Fprintf(&b, "Light: %d%%\n", r.LightPct)
	fmt.Fprintf(&b, "Temp: %.1fC (%d%%)\n", r.Celsius, r.TempPct)
	fmt.Fprintf(&b, "Motion: %s\n", motionText(s.Motion))
	fmt.Fprintf(&b, "Status: %s\n", st)
	b.WriteString(Footer(t))
	return b.String()
}

// Footer names the three safe bands. It depends only on the fixed
// thresholds, so it is the same line every cycle.
func Footer(t status.Thresholds) string {
	return fmt.Sprintf("Ideal: moisture >%d%%, temp %d-%d%%, light %d-%d%%\n",
		t.MoistureLow, t.TempLow, t.TempHigh, t.LightLow, t.LightHigh)
}

// Write renders the report to w, followed by a blank separator line.
func Write(w io.Writer, s sensor.Sample, r scale.Reading, st status.Status, t status.Thresholds) error {
	if _, err := io.WriteString(w, Render(s, r, st, t)+"\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func motionText(m bool) string {
	if m {
		return "detected"
	}
	return "none"
}
