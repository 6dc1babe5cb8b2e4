// Command plantmon watches a potted plant's environment: soil moisture,
// light, temperature, and motion, classified against fixed safe bands
// and rendered to LEDs, a two-line display, and a serial-style log.
//
// With no arguments it opens the live TUI on a simulated plant. "run"
// drives the headless loop instead, writing the log to stdout and the
// LEDs to whatever the configured backend provides.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/luki/plantmon/internal/config"
	"github.com/luki/plantmon/internal/controller"
	"github.com/luki/plantmon/internal/hal"
	"github.com/luki/plantmon/internal/monitor"
	"github.com/luki/plantmon/internal/sensor"
)

func main() {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := os.Args[1:]
	mode := "monitor"
	if len(args) > 0 {
		mode = args[0]
	}

	switch mode {
	case "monitor":
		runMonitor(cfg, logger)
	case "run":
		runHeadless(cfg, logger)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", mode)
		printUsage()
		os.Exit(1)
	}
}

func runMonitor(cfg *config.Config, logger *zap.Logger) {
	probe, err := buildProbe(cfg, logger)
	if err != nil {
		logger.Fatal("probe setup failed", zap.Error(err))
	}

	m := monitor.New(probe, cfg.Thresholds, cfg.PollInterval, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatal("monitor failed", zap.Error(err))
	}
}

func runHeadless(cfg *config.Config, logger *zap.Logger) {
	probe, err := buildProbe(cfg, logger)
	if err != nil {
		logger.Fatal("probe setup failed", zap.Error(err))
	}

	out := controller.Outputs{
		Red:     buildPin(cfg, cfg.Sysfs.Red, "red", logger),
		Green:   buildPin(cfg, cfg.Sysfs.Green, "green", logger),
		Orange:  buildPin(cfg, cfg.Sysfs.Orange, "orange", logger),
		Display: &hal.WriterDisplay{W: os.Stdout},
		Log:     os.Stdout,
	}

	ctrl := controller.New(probe, cfg.Thresholds, out, hal.RealClock{}, cfg.PollInterval, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting loop",
		zap.String("backend", cfg.Backend),
		zap.Duration("interval", cfg.PollInterval),
	)
	if err := ctrl.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("loop failed", zap.Error(err))
	}
	logger.Info("stopped")
}

// buildProbe assembles the four input ports for the configured backend.
func buildProbe(cfg *config.Config, logger *zap.Logger) (sensor.Probe, error) {
	switch cfg.Backend {
	case config.BackendSysfs:
		logger.Info("using sysfs backend",
			zap.String("moisture", cfg.Sysfs.Moisture),
			zap.String("light", cfg.Sysfs.Light),
			zap.String("temp", cfg.Sysfs.Temp),
			zap.String("motion", cfg.Sysfs.Motion),
		)
		return sensor.Probe{
			Moisture: hal.IIOChannel{Path: cfg.Sysfs.Moisture},
			Light:    hal.IIOChannel{Path: cfg.Sysfs.Light},
			Temp:     hal.IIOChannel{Path: cfg.Sysfs.Temp},
			Motion:   hal.GPIOInput{Path: cfg.Sysfs.Motion},
		}, nil
	case config.BackendSim:
		logger.Info("using simulated backend")
		return sensor.Probe{
			// Midpoints sit inside the safe bands; the swings wander out
			// of them so every status shows up eventually.
			Moisture: &hal.SimAnalog{Base: 500, Swing: 350, Period: 90},
			Light:    &hal.SimAnalog{Base: 512, Swing: 400, Period: 120, Phase: 40},
			Temp:     &hal.SimAnalog{Base: 25, Swing: 20, Period: 75, Phase: 20},
			Motion:   &hal.SimMotion{Period: 45},
		}, nil
	default:
		return sensor.Probe{}, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// buildPin returns a sysfs GPIO writer on hardware, a transition logger
// otherwise.
func buildPin(cfg *config.Config, path, name string, logger *zap.Logger) hal.PinWriter {
	if cfg.Backend == config.BackendSysfs {
		return hal.GPIOOutput{Path: path}
	}
	return &hal.LoggerPin{Name: name, Logger: logger}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func printUsage() {
	fmt.Println(`plantmon - plant environment monitor

Usage:
  plantmon            Live TUI monitor
  plantmon run        Headless loop, log to stdout
  plantmon help       This help

Configuration is read from the environment (and .env):
  PLANTMON_BACKEND         sim | sysfs          (default sim)
  PLANTMON_POLL_INTERVAL   Go duration          (default 2s)
  PLANTMON_LOG_LEVEL       zap level            (default info)
  PLANTMON_MOISTURE_LOW    percent              (default 30)
  PLANTMON_TEMP_LOW/HIGH   percent              (default 30/60)
  PLANTMON_LIGHT_LOW/HIGH  percent              (default 30/70)
  PLANTMON_ADC_*           sysfs ADC paths
  PLANTMON_GPIO_*          sysfs GPIO paths`)
}
