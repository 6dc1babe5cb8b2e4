// Package monitor implements the live plant monitor TUI using BubbleTea:
// virtual LED lamps, a virtual two-line LCD, per-channel sparklines, and
// the rolling serial log.
package monitor

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/luki/plantmon/internal/chart"
	"github.com/luki/plantmon/internal/controller"
	"github.com/luki/plantmon/internal/hal"
	"github.com/luki/plantmon/internal/history"
	"github.com/luki/plantmon/internal/sensor"
	"github.com/luki/plantmon/internal/status"
)

const (
	historySize = 600 // 20 minutes at the stock 2s interval
	logTailSize = 200
)

// ── Messages ─────────────────────────────────────────────────────────

type tickMsg time.Time

type cycleMsg struct {
	res  controller.Result
	time time.Time
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model for the live monitor. The controller
// dispatches into in-memory lamps, display, and log tail, and the view
// mirrors them on the terminal.
type Model struct {
	ctrl *controller.Controller

	red    *hal.MemoryPin
	green  *hal.MemoryPin
	orange *hal.MemoryPin
	lcd    *hal.MemoryDisplay
	tail   *tailWriter

	histMoisture *history.Series
	histTemp     *history.Series
	histLight    *history.Series

	res       controller.Result
	hasCycle  bool
	err       error
	width     int
	height    int
	scroll    int
	lastPoll  time.Time
	startTime time.Time
	paused    bool
}

// New wires the controller to in-memory output channels and builds the
// initial model.
func New(probe sensor.Probe, t status.Thresholds, interval time.Duration, logger *zap.Logger) Model {
	red := &hal.MemoryPin{}
	green := &hal.MemoryPin{}
	orange := &hal.MemoryPin{}
	lcd := &hal.MemoryDisplay{}
	tail := newTailWriter(logTailSize)

	out := controller.Outputs{
		Red:     red,
		Green:   green,
		Orange:  orange,
		Display: lcd,
		Log:     tail,
	}

	return Model{
		ctrl:         controller.New(probe, t, out, hal.RealClock{}, interval, logger),
		red:          red,
		green:        green,
		orange:       orange,
		lcd:          lcd,
		tail:         tail,
		histMoisture: history.NewSeries(historySize),
		histTemp:     history.NewSeries(historySize),
		histLight:    history.NewSeries(historySize),
		startTime:    time.Now(),
	}
}

// ── Commands ─────────────────────────────────────────────────────────

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.ctrl.Interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) cycleCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		res, err := ctrl.Step()
		if err != nil {
			return errMsg{err}
		}
		return cycleMsg{res: res, time: time.Now()}
	}
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.cycleCmd(), m.tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		case "home":
			m.scroll = 0
		case " ", "p":
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused {
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.cycleCmd(), m.tickCmd())

	case cycleMsg:
		m.res = msg.res
		m.hasCycle = true
		m.lastPoll = msg.time
		m.err = nil
		m.histMoisture.Push(float64(msg.res.Reading.MoisturePct), msg.time)
		m.histTemp.Push(float64(msg.res.Reading.TempPct), msg.time)
		m.histLight.Push(float64(msg.res.Reading.LightPct), msg.time)

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("22")
	colorTitleFg  = lipgloss.Color("120")
	colorBorder   = lipgloss.Color("65")
	colorLabel    = lipgloss.Color("252")
	colorDim      = lipgloss.Color("240")
	colorFooterBg = lipgloss.Color("235")
	colorOk       = lipgloss.Color("78")
	colorWarn     = lipgloss.Color("220")
	colorAlert    = lipgloss.Color("196")
	colorMotion   = lipgloss.Color("208")
	colorLCD      = lipgloss.Color("156")
	colorLCDBg    = lipgloss.Color("235")
	colorPaused   = lipgloss.Color("196")
)

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "  Initializing..."
	}

	contentWidth := m.width - 2
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string

	sections = append(sections, m.renderTitleBar(contentWidth))

	if m.err != nil {
		errBox := lipgloss.NewStyle().
			Foreground(colorAlert).
			Bold(true).
			Width(contentWidth).
			Padding(0, 1).
			Render(fmt.Sprintf(" ERROR: %v", m.err))
		sections = append(sections, errBox)
	}

	if !m.hasCycle {
		waiting := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(contentWidth).
			Align(lipgloss.Center).
			Padding(2, 0).
			Render("Waiting for the first cycle...")
		sections = append(sections, waiting)
	} else {
		sections = append(sections, m.renderStatusPanel(contentWidth))
		sections = append(sections, m.renderChannelPanel(contentWidth))
		sections = append(sections, m.renderLogPanel(contentWidth))
	}

	sections = append(sections, m.renderFooter(contentWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	lines := strings.Split(content, "\n")
	visibleLines := m.height
	if visibleLines < 5 {
		visibleLines = 5
	}
	maxScroll := len(lines) - visibleLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}

	start := m.scroll
	end := start + visibleLines
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("PLANT MONITOR")

	var statusParts []string

	uptime := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(fmt.Sprintf("up %s", fmtDuration(time.Since(m.startTime))))
	statusParts = append(statusParts, uptime)

	if !m.lastPoll.IsZero() {
		ts := lipgloss.NewStyle().
			Foreground(colorDim).
			Render(m.lastPoll.Format("15:04:05"))
		statusParts = append(statusParts, ts)
	}

	if m.paused {
		p := lipgloss.NewStyle().
			Foreground(colorPaused).
			Bold(true).
			Render("PAUSED")
		statusParts = append(statusParts, p)
	}

	sep := lipgloss.NewStyle().Foreground(colorDim).Render(" │ ")
	right := strings.Join(statusParts, sep)

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + filler + right)
}

// renderStatusPanel draws the virtual LEDs and the virtual LCD side by
// side: the hardware faceplate.
func (m Model) renderStatusPanel(width int) string {
	lamps := lipgloss.JoinVertical(lipgloss.Left,
		renderLamp("GREEN", m.green.On(), colorOk),
		renderLamp("RED", m.red.On(), colorAlert),
		renderLamp("ORANGE", m.orange.On(), colorMotion),
	)
	lampBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2).
		Render(lamps)

	line0, line1 := m.lcd.Lines()
	lcdStyle := lipgloss.NewStyle().
		Foreground(colorLCD).
		Background(colorLCDBg).
		Width(16)
	lcd := lipgloss.JoinVertical(lipgloss.Left,
		lcdStyle.Render(line0),
		lcdStyle.Render(line1),
	)
	lcdBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Render(lcd)

	tempText := fmt.Sprintf("%.1f°C", m.res.Reading.Celsius)
	motionText := "no motion"
	if m.res.Sample.Motion {
		motionText = "MOTION"
	}
	readout := lipgloss.NewStyle().
		Foreground(colorLabel).
		Render(tempText + "\n" + motionText)
	readoutBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Render(readout)

	return lipgloss.JoinHorizontal(lipgloss.Top, lampBox, " ", lcdBox, " ", readoutBox)
}

func renderLamp(name string, on bool, color lipgloss.Color) string {
	dot := lipgloss.NewStyle().Foreground(colorDim).Render("○")
	label := lipgloss.NewStyle().Foreground(colorDim).Render(name)
	if on {
		dot = lipgloss.NewStyle().Foreground(color).Bold(true).Render("●")
		label = lipgloss.NewStyle().Foreground(color).Render(name)
	}
	return dot + " " + label
}

// channelSpec describes one sparkline row.
type channelSpec struct {
	label   string
	series  *history.Series
	low     float64
	high    float64
	hasHigh bool
}

func (m Model) channels() []channelSpec {
	t := m.ctrl.Thresholds()
	return []channelSpec{
		{label: "Moisture", series: m.histMoisture, low: float64(t.MoistureLow)},
		{label: "Temp", series: m.histTemp, low: float64(t.TempLow), high: float64(t.TempHigh), hasHigh: true},
		{label: "Light", series: m.histLight, low: float64(t.LightLow), high: float64(t.LightHigh), hasHigh: true},
	}
}

func (m Model) renderChannelPanel(totalWidth int) string {
	innerWidth := totalWidth - 4
	if innerWidth < 30 {
		innerWidth = 30
	}

	chartWidth := innerWidth - 52
	if chartWidth < 15 {
		chartWidth = 15
	}
	if chartWidth > 140 {
		chartWidth = 140
	}

	labelW := 10
	valueW := 5

	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	frameL := lipgloss.NewStyle().Foreground(colorBorder).Render("▕")
	frameR := lipgloss.NewStyle().Foreground(colorBorder).Render("▏")

	var rows []string
	var lastPts []history.Point

	for _, ch := range m.channels() {
		hist := ch.series
		if hist.Len() == 0 {
			continue
		}

		label := lipgloss.NewStyle().
			Foreground(colorLabel).
			Width(labelW).
			Render(ch.label)

		value := lipgloss.NewStyle().
			Width(valueW).
			Align(lipgloss.Right).
			Render(chart.RenderPercentValue(hist.Last(), ch.low, ch.high, ch.hasHigh))

		pts := hist.LastN(chartWidth)
		lastPts = pts
		spark := chart.RenderSparkline(pts, chartWidth, ch.low, ch.high, ch.hasHigh)
		framedSpark := frameL + spark + frameR

		stats := dimS.Render(" avg") + valS.Render(fmt.Sprintf("%4.0f", hist.Avg())) +
			dimS.Render(" lo") + valS.Render(fmt.Sprintf("%4.0f", hist.Floor)) +
			dimS.Render(" pk") + valS.Render(fmt.Sprintf("%4.0f", hist.Peak))

		scale := chart.RenderBandScale(hist.Last(), ch.low, ch.high, ch.hasHigh, 12)

		rows = append(rows, label+" "+value+" "+framedSpark+stats+" "+scale)
	}

	if lastPts != nil {
		timeline := chart.RenderTimeline(lastPts, chartWidth)
		if strings.TrimSpace(timeline) != "" {
			pad := strings.Repeat(" ", labelW+valueW+2)
			rows = append(rows, pad+" "+timeline)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(totalWidth).
		Render(content)
}

func (m Model) renderLogPanel(totalWidth int) string {
	lines := m.tail.Lines(8)
	if len(lines) == 0 {
		lines = []string{"(no log output yet)"}
	}

	style := lipgloss.NewStyle().Foreground(colorDim)
	var rows []string
	for _, l := range lines {
		rows = append(rows, style.Render(l))
	}

	header := lipgloss.NewStyle().Foreground(colorLabel).Render("Serial log")
	content := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(totalWidth).
		Render(content)
}

func (m Model) renderFooter(width int) string {
	okS := lipgloss.NewStyle().Foreground(colorOk).Render("██")
	warnS := lipgloss.NewStyle().Foreground(colorWarn).Render("██")
	underS := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Render("██")
	overS := lipgloss.NewStyle().Foreground(colorMotion).Render("██")
	tickS := lipgloss.NewStyle().Foreground(lipgloss.Color("239")).Render("│")

	dimS := lipgloss.NewStyle().Foreground(colorDim)
	legend := okS + dimS.Render(" in band ") +
		warnS + dimS.Render(" near edge ") +
		underS + dimS.Render(" under ") +
		overS + dimS.Render(" over ") +
		tickS + dimS.Render(" 1min")

	keys := dimS.Render("q") + lipgloss.NewStyle().Foreground(colorLabel).Render(":quit") +
		dimS.Render("  j/k") + lipgloss.NewStyle().Foreground(colorLabel).Render(":scroll") +
		dimS.Render("  p") + lipgloss.NewStyle().Foreground(colorLabel).Render(":pause")

	gap := width - lipgloss.Width(legend) - lipgloss.Width(keys) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(legend + filler + keys)
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	min := d / time.Minute
	d -= min * time.Minute
	s := d / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, min, s)
	}
	return fmt.Sprintf("%dm%02ds", min, s)
}

// ── Log tail ─────────────────────────────────────────────────────────

// tailWriter is an io.Writer that keeps the last max lines written to
// it. The controller writes cycle reports from a tea command goroutine
// while the view reads, hence the lock.
type tailWriter struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func newTailWriter(max int) *tailWriter {
	return &tailWriter{max: max}
}

// Write appends p's lines, dropping the oldest beyond capacity.
func (t *tailWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		t.lines = append(t.lines, l)
	}
	if over := len(t.lines) - t.max; over > 0 {
		t.lines = t.lines[over:]
	}
	return len(p), nil
}

// Lines returns up to the last n lines.
func (t *tailWriter) Lines(n int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n > len(t.lines) {
		n = len(t.lines)
	}
	out := make([]string, n)
	copy(out, t.lines[len(t.lines)-n:])
	return out
}
