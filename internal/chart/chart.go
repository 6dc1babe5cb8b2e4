// Package chart renders percent-band sparklines: 0-100 channels colored
// against a safe band with a low and an optional high edge, with minute
// tick marks and a band scale bar.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/plantmon/internal/history"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BandColor returns the color for a value against its safe band
// [low,high]. Below the band reads cold blue, above reads hot orange,
// near an edge reads yellow.
func BandColor(v, low, high float64, hasHigh bool) lipgloss.Color {
	margin := (high - low) * 0.1
	if !hasHigh {
		margin = low * 0.1
	}
	switch {
	case v < low:
		return lipgloss.Color("39") // blue, under the band
	case hasHigh && v > high:
		return lipgloss.Color("208") // orange, over the band
	case v < low+margin:
		return lipgloss.Color("220") // yellow, close to the low edge
	case hasHigh && v > high-margin:
		return lipgloss.Color("220") // yellow, close to the high edge
	default:
		return lipgloss.Color("78") // soft green, safely inside
	}
}

// RenderSparkline renders a channel's recent points over the fixed 0-100
// range, colored against the safe band. A subtle pipe marks each minute
// boundary.
func RenderSparkline(points []history.Point, width int, low, high float64, hasHigh bool) string {
	if width <= 0 {
		return ""
	}

	if len(points) == 0 {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
		return dim.Render(strings.Repeat("╌", width))
	}

	if len(points) > width {
		points = points[len(points)-width:]
	}

	padLen := width - len(points)

	var sb strings.Builder

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	for i := 0; i < padLen; i++ {
		sb.WriteString(dim.Render("╌"))
	}

	tickStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))

	for i, p := range points {
		norm := p.Value / 100
		norm = math.Max(0, math.Min(1, norm))

		idx := int(norm * 7)
		if idx > 7 {
			idx = 7
		}

		if minuteTick(points, i) {
			sb.WriteString(tickStyle.Render("│"))
			continue
		}

		style := lipgloss.NewStyle().Foreground(BandColor(p.Value, low, high, hasHigh))
		if p.Value < low || (hasHigh && p.Value > high) {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(string(sparkBlocks[idx])))
	}

	return sb.String()
}

func minuteTick(points []history.Point, i int) bool {
	p := points[i]
	if p.Time.IsZero() {
		return false
	}
	if p.Time.Second() == 0 {
		return true
	}
	if i > 0 && !points[i-1].Time.IsZero() {
		return p.Time.Minute() != points[i-1].Time.Minute()
	}
	return false
}

// RenderTimeline renders HH:MM labels under the sparkline at each minute
// tick position.
func RenderTimeline(points []history.Point, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}

	if len(points) > width {
		points = points[len(points)-width:]
	}

	padLen := width - len(points)

	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}

	type tick struct {
		pos   int
		label string
	}
	var ticks []tick

	for i, p := range points {
		if minuteTick(points, i) {
			ticks = append(ticks, tick{pos: padLen + i, label: p.Time.Format("15:04")})
		}
	}

	lastEnd := -1
	for _, t := range ticks {
		start := t.pos - 2
		if start < 0 {
			start = 0
		}
		end := start + len(t.label)
		if end > width {
			continue
		}
		if start <= lastEnd+1 {
			continue
		}
		for j, ch := range t.label {
			line[start+j] = ch
		}
		lastEnd = end
	}

	tickStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	return tickStyle.Render(string(line))
}

// RenderBandScale renders a 0-100 scale bar with the band edges marked
// and the current value highlighted.
func RenderBandScale(current, low, high float64, hasHigh bool, width int) string {
	if width <= 0 {
		return ""
	}

	bar := make([]rune, width)
	for i := range bar {
		bar[i] = '·'
	}

	pos := func(v float64) int {
		p := int(float64(width-1) * v / 100)
		if p < 0 {
			p = 0
		}
		if p >= width {
			p = width - 1
		}
		return p
	}

	lowPos := pos(low)
	bar[lowPos] = '▪'
	highPos := -1
	if hasHigh {
		highPos = pos(high)
		bar[highPos] = '▪'
	}
	curPos := pos(current)

	edge := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	var sb strings.Builder
	for i, ch := range bar {
		switch {
		case i == curPos:
			style := lipgloss.NewStyle().Foreground(BandColor(current, low, high, hasHigh)).Bold(true)
			sb.WriteString(style.Render("◆"))
		case i == lowPos || i == highPos:
			sb.WriteString(edge.Render("▪"))
		default:
			sb.WriteString(dim.Render(string(ch)))
		}
	}

	return sb.String()
}

// RenderPercentValue renders "NN%" colored against the safe band.
func RenderPercentValue(v, low, high float64, hasHigh bool) string {
	s := fmt.Sprintf("%3.0f%%", v)
	style := lipgloss.NewStyle().Foreground(BandColor(v, low, high, hasHigh))
	if v < low || (hasHigh && v > high) {
		style = style.Bold(true)
	}
	return style.Render(s)
}
