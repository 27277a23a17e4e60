// Command weather-scene renders an animated weather scene in the terminal.
//
// Usage:
//
//	weather-scene -preset storm
//	weather-scene -obs current.json -wind-speed 30
//
// Keys 1-5 switch presets, n cycles, Ctrl-L redraws, q or Esc quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"

	"github.com/lixenwraith/weather-scene/audio"
	"github.com/lixenwraith/weather-scene/config"
	"github.com/lixenwraith/weather-scene/engine"
	"github.com/lixenwraith/weather-scene/observability"
	"github.com/lixenwraith/weather-scene/parameter/visual"
	"github.com/lixenwraith/weather-scene/physics"
	"github.com/lixenwraith/weather-scene/render"
	"github.com/lixenwraith/weather-scene/render/layers"
	"github.com/lixenwraith/weather-scene/scene"
	"github.com/lixenwraith/weather-scene/terminal"
	"github.com/lixenwraith/weather-scene/vmath"
	"github.com/lixenwraith/weather-scene/weather"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the scene crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "weather-scene: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	preset := flag.String("preset", "rain", "starting preset: clear, fog, rain, snow, storm")
	obsPath := flag.String("obs", "", "observation JSON file, bare or under \"current\"")
	var overrides weather.Overrides
	overrides.Register(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := observability.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	obs, err := overrides.Resolve(*obsPath, *preset)
	if err != nil {
		return err
	}
	current, _ := weather.PresetIndex(*preset)

	screen, err := terminal.New(cfg.PixelRatio)
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	canvas := render.NewCanvas(visual.SkyTop, visual.SkyBottom)
	clock := clockwork.NewRealClock()
	host := engine.NewHost(clock, cfg.FPS, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	observers := []engine.FrameObserver{terminal.NewPresenter(screen, canvas)}

	var onRestart func(*scene.Params)
	if cfg.MetricsAddr != "" {
		metrics := observability.NewMetrics()
		observers = append(observers, metrics)
		onRestart = metrics.ObserveRestart

		srv := startMetricsServer(cfg.MetricsAddr, metrics, logger)
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown error", "error", err)
			}
		}()
	}

	if cfg.Audio {
		ambience := audio.NewAmbience(cfg.Seed, logger)
		if err := ambience.Start(); err != nil {
			logger.Warn("audio unavailable, continuing silently", "error", err)
		} else {
			observers = append(observers, ambience)
			defer ambience.Close()
		}
	}

	ctrl := engine.NewController(engine.ControllerConfig{
		Frames:    host,
		Resizes:   host,
		Display:   screen,
		Surface:   func() render.Surface { return canvas },
		Renderer:  layers.NewDefault(),
		WindScale: cfg.WindScale,
		Source:    sourceFunc(cfg.Seed),
		Clock:     clock,
		Logger:    logger,
		Observers: observers,
		OnRestart: onRestart,
	})

	host.Post(func() { ctrl.SetObservation(obs) })

	// Selecting a preset always restarts: each copy is a new observation identity
	selectPreset := func(i int) {
		current = i
		o := weather.Presets[i].Observation
		ctrl.SetObservation(&o)
	}

	terminal.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				host.Post(func() {
					screen.Sync()
					host.NotifyResize()
				})
			case *tcell.EventKey:
				act := terminal.KeyAction(ev)
				switch act.Kind {
				case terminal.ActionQuit:
					cancel()
					return
				case terminal.ActionPreset:
					if act.Index < len(weather.Presets) {
						host.Post(func() { selectPreset(act.Index) })
					}
				case terminal.ActionNextPreset:
					host.Post(func() { selectPreset((current + 1) % len(weather.Presets)) })
				case terminal.ActionRedraw:
					host.Post(screen.Sync)
				}
			}
		}
	})

	logger.Info("weather scene running", "fps", cfg.FPS, "pixel_ratio", cfg.PixelRatio, "audio", cfg.Audio)
	if err := host.Run(ctx); err != nil {
		return err
	}

	// Host goroutine has exited, the controller is ours again
	ctrl.Close()
	logger.Info("shutdown complete")
	return nil
}

func startMetricsServer(addr string, metrics *observability.Metrics, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	terminal.Go(func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	})
	logger.Info("metrics enabled", "addr", addr)
	return srv
}

// sourceFunc returns nil for a time-based seed, otherwise reproducible sources
func sourceFunc(seed uint64) engine.SourceFunc {
	if seed == 0 {
		return nil
	}
	return func() physics.Source {
		return vmath.NewFastRand(seed)
	}
}
