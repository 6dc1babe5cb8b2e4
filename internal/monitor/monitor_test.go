package monitor

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/luki/plantmon/internal/hal"
	"github.com/luki/plantmon/internal/sensor"
	"github.com/luki/plantmon/internal/status"
)

func testModel() Model {
	p := sensor.Probe{
		Moisture: &hal.SimAnalog{Base: 500, Swing: 350, Period: 9},
		Light:    &hal.SimAnalog{Base: 512, Swing: 400, Period: 12},
		Temp:     &hal.SimAnalog{Base: 25, Swing: 20, Period: 7},
		Motion:   &hal.SimMotion{Period: 4},
	}
	return New(p, status.Default(), 50*time.Millisecond, zap.NewNop())
}

func runCycle(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.cycleCmd()()
	if _, isErr := msg.(errMsg); isErr {
		t.Fatalf("cycle failed: %v", msg)
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestViewRendersCycleState(t *testing.T) {
	m := testModel()
	m.width = 100
	m.height = 40

	m = runCycle(t, m)

	out := m.View()
	if !strings.Contains(out, "PLANT MONITOR") {
		t.Error("missing title bar")
	}
	if !strings.Contains(out, "Moisture") {
		t.Error("missing channel rows")
	}
	if !strings.Contains(out, "Serial log") {
		t.Error("missing log panel")
	}

	line0, line1 := m.lcd.Lines()
	if line0 == "" || line1 == "" {
		t.Errorf("LCD not written: (%q, %q)", line0, line1)
	}
}

func TestViewWhileCycleInFlight(t *testing.T) {
	m := testModel()
	m.width = 100
	m.height = 40

	m = runCycle(t, m)

	// Cycles dispatch from a command goroutine while the UI goroutine
	// renders; the shared lamp, LCD, and log state must tolerate that.
	// Run under -race.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			m.cycleCmd()()
		}
	}()

	for i := 0; i < 200; i++ {
		if out := m.View(); out == "" {
			t.Fatal("empty view")
		}
	}
	wg.Wait()
}

func TestUpdatePauseStopsPolling(t *testing.T) {
	m := testModel()
	m.paused = true

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)

	// Paused ticks reschedule the tick but never start a cycle, so the
	// command must not be a batch.
	if cmd == nil {
		t.Fatal("expected tick to be rescheduled")
	}
	if _, ok := cmd().(tea.BatchMsg); ok {
		t.Error("paused tick still started a cycle")
	}
}
