package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/plantmon/internal/history"
)

func TestBandColor(t *testing.T) {
	tests := []struct {
		v    float64
		want lipgloss.Color
	}{
		{10, lipgloss.Color("39")},  // under
		{50, lipgloss.Color("78")},  // in band
		{80, lipgloss.Color("208")}, // over
		{31, lipgloss.Color("220")}, // hugging the low edge
	}
	for _, tt := range tests {
		if got := BandColor(tt.v, 30, 70, true); got != tt.want {
			t.Errorf("BandColor(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	var pts []history.Point
	for i, v := range []float64{10, 30, 50, 70, 90, 100} {
		pts = append(pts, history.Point{Value: v, Time: time.Date(2026, 8, 20, 9, 0, 10+i, 0, time.Local)})
	}

	result := RenderSparkline(pts, 20, 30, 70, true)
	if len(result) == 0 {
		t.Error("sparkline should not be empty")
	}
}

func TestRenderSparklineMinuteTicks(t *testing.T) {
	base := time.Date(2026, 8, 20, 9, 0, 50, 0, time.Local)
	var pts []history.Point
	for i := 0; i < 20; i++ {
		pts = append(pts, history.Point{
			Value: float64(40 + i%5),
			Time:  base.Add(time.Duration(i) * time.Second),
		})
	}

	result := RenderSparkline(pts, 20, 30, 70, true)
	if !strings.Contains(result, "│") {
		t.Error("expected minute tick mark in sparkline")
	}
}

func TestRenderBandScale(t *testing.T) {
	result := RenderBandScale(50, 30, 70, true, 12)
	if result == "" {
		t.Error("band scale should not be empty")
	}
	if !strings.Contains(result, "◆") {
		t.Error("expected current-value marker")
	}
}

func TestRenderTimeline(t *testing.T) {
	base := time.Date(2026, 8, 20, 9, 0, 58, 0, time.Local)
	var pts []history.Point
	for i := 0; i < 10; i++ {
		pts = append(pts, history.Point{Value: 50, Time: base.Add(time.Duration(i) * time.Second)})
	}

	result := RenderTimeline(pts, 30)
	if !strings.Contains(result, "09:01") {
		t.Errorf("expected minute label, got %q", result)
	}
}
