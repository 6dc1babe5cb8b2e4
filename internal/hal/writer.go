package hal

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// WriterDisplay renders the two display lines to a stream, for headless
// runs without a physical LCD. The pair is printed once per rewrite,
// after line 1 lands.
type WriterDisplay struct {
	W io.Writer

	lines [2]string
}

// Clear blanks both lines.
func (d *WriterDisplay) Clear() error {
	d.lines = [2]string{}
	return nil
}

// SetLine writes one line, emitting the pair when the second line is set.
func (d *WriterDisplay) SetLine(line int, text string) error {
	if line < 0 || line > 1 {
		return fmt.Errorf("display has no line %d", line)
	}
	d.lines[line] = text
	if line == 1 {
		if _, err := fmt.Fprintf(d.W, "[%s | %s]\n", d.lines[0], d.lines[1]); err != nil {
			return fmt.Errorf("write display: %w", err)
		}
	}
	return nil
}

// LoggerPin logs level transitions instead of driving hardware. Repeated
// writes of the same level are silent.
type LoggerPin struct {
	Name   string
	Logger *zap.Logger

	last    bool
	written bool
}

// Set records the level, logging only on change.
func (p *LoggerPin) Set(on bool) error {
	if p.written && on == p.last {
		return nil
	}
	p.last = on
	p.written = true
	p.Logger.Info("led",
		zap.String("pin", p.Name),
		zap.Bool("on", on),
	)
	return nil
}
