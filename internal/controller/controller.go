// Package controller runs the polling cycle: read the probe, scale the
// sample, classify it, and dispatch the result to the LED, display, and
// log channels.
package controller

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/luki/plantmon/internal/hal"
	"github.com/luki/plantmon/internal/report"
	"github.com/luki/plantmon/internal/scale"
	"github.com/luki/plantmon/internal/sensor"
	"github.com/luki/plantmon/internal/status"
)

// DefaultInterval is the stock delay between cycles.
const DefaultInterval = 2 * time.Second

// Outputs are the three channels the dispatcher drives. Each renders its
// own view of the classification; there is no coordination between them.
type Outputs struct {
	Red    hal.PinWriter
	Green  hal.PinWriter
	Orange hal.PinWriter

	Display hal.Display
	Log     io.Writer
}

// Result is everything one cycle produced, for callers that render it.
type Result struct {
	Sample  sensor.Sample
	Reading scale.Reading
	Status  status.Status
}

// Controller owns one plant station's polling loop. It holds no state
// between cycles beyond its fixed wiring.
type Controller struct {
	probe      sensor.Probe
	thresholds status.Thresholds
	out        Outputs
	clock      hal.Clock
	interval   time.Duration
	logger     *zap.Logger
}

// New wires a controller. A zero interval falls back to DefaultInterval.
func New(probe sensor.Probe, t status.Thresholds, out Outputs, clock hal.Clock, interval time.Duration, logger *zap.Logger) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		probe:      probe,
		thresholds: t,
		out:        out,
		clock:      clock,
		interval:   interval,
		logger:     logger,
	}
}

// Thresholds returns the fixed safe bands the controller classifies
// against.
func (c *Controller) Thresholds() status.Thresholds { return c.thresholds }

// Interval returns the fixed inter-cycle delay.
func (c *Controller) Interval() time.Duration { return c.interval }

// Step runs one full cycle. A failed sensor read is logged and the
// partial sample carries on; its zero values classify as ordinary low
// readings.
func (c *Controller) Step() (Result, error) {
	sample, err := c.probe.Read()
	if err != nil {
		c.logger.Warn("sensor read failed", zap.Error(err))
	}

	reading := scale.Scale(sample)
	st := status.Classify(sample.Motion, reading.MoisturePct, reading.TempPct, reading.LightPct, c.thresholds)
	res := Result{Sample: sample, Reading: reading, Status: st}

	if err := c.dispatch(res); err != nil {
		return res, err
	}
	return res, nil
}

func (c *Controller) dispatch(r Result) error {
	// LED channel. Orange tracks motion alone; red/green track the
	// attention boolean, which excludes motion.
	attention := status.NeedsAttention(r.Reading.MoisturePct, r.Reading.TempPct, r.Reading.LightPct, c.thresholds)
	if err := c.out.Orange.Set(r.Sample.Motion); err != nil {
		return fmt.Errorf("orange led: %w", err)
	}
	if err := c.out.Red.Set(attention); err != nil {
		return fmt.Errorf("red led: %w", err)
	}
	if err := c.out.Green.Set(!attention); err != nil {
		return fmt.Errorf("green led: %w", err)
	}

	// Display channel: full clear-then-write, both lines, every cycle.
	line0, line1 := status.Lines(r.Status)
	if err := c.out.Display.Clear(); err != nil {
		return fmt.Errorf("display clear: %w", err)
	}
	if err := c.out.Display.SetLine(0, line0); err != nil {
		return fmt.Errorf("display line 0: %w", err)
	}
	if err := c.out.Display.SetLine(1, line1); err != nil {
		return fmt.Errorf("display line 1: %w", err)
	}

	// Log channel.
	if err := report.Write(c.out.Log, r.Sample, r.Reading, r.Status, c.thresholds); err != nil {
		return err
	}
	return nil
}

// Run polls until ctx is canceled: step, sleep the fixed interval,
// repeat. Cycle errors are logged, never fatal; the delay never adapts.
// A cancel that lands during the sleep stops the loop before the next
// cycle starts.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := c.Step(); err != nil {
			c.logger.Error("cycle failed", zap.Error(err))
		}
		c.clock.Sleep(c.interval)
	}
}
