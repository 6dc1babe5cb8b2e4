// Package hal abstracts the board I/O the monitor runs against: analog
// and digital input channels, LED pins, the two-line character display,
// and the cycle clock. Backends exist for Linux sysfs hardware and for a
// simulated plant.
package hal

import (
	"fmt"
	"sync"
	"time"
)

// AnalogReader reads one raw value from a 10-bit analog channel (0-1023).
type AnalogReader interface {
	Read() (int, error)
}

// DigitalReader reads one boolean input, e.g. a PIR motion sensor.
type DigitalReader interface {
	Read() (bool, error)
}

// PinWriter drives one digital output pin.
type PinWriter interface {
	Set(on bool) error
}

// Display is a two-line character display. Writers clear it and rewrite
// both lines every cycle; there is no incremental update.
type Display interface {
	Clear() error
	SetLine(line int, text string) error
}

// Clock provides the fixed delay between polling cycles.
type Clock interface {
	Sleep(d time.Duration)
}

// RealClock sleeps on the wall clock.
type RealClock struct{}

// Sleep blocks for d.
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }

// MemoryPin records the last level written to it. The TUI lamps and the
// tests read it back. The dispatcher writes from a tea command goroutine
// while the view reads, hence the lock.
type MemoryPin struct {
	mu sync.Mutex
	on bool
}

// Set stores the pin level.
func (p *MemoryPin) Set(on bool) error {
	p.mu.Lock()
	p.on = on
	p.mu.Unlock()
	return nil
}

// On returns the last level written.
func (p *MemoryPin) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}

// MemoryDisplay holds the two display lines in memory for rendering
// elsewhere (the TUI's virtual LCD). Locked for the same reason as
// MemoryPin.
type MemoryDisplay struct {
	mu    sync.Mutex
	lines [2]string
}

// Clear blanks both lines.
func (d *MemoryDisplay) Clear() error {
	d.mu.Lock()
	d.lines = [2]string{}
	d.mu.Unlock()
	return nil
}

// SetLine writes one line. Only lines 0 and 1 exist.
func (d *MemoryDisplay) SetLine(line int, text string) error {
	if line < 0 || line > 1 {
		return fmt.Errorf("display has no line %d", line)
	}
	d.mu.Lock()
	d.lines[line] = text
	d.mu.Unlock()
	return nil
}

// Lines returns the current contents of both lines.
func (d *MemoryDisplay) Lines() (string, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lines[0], d.lines[1]
}
