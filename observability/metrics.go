package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/weather-scene/engine"
	"github.com/lixenwraith/weather-scene/scene"
)

var modes = []scene.Mode{scene.ModeClear, scene.ModeFog, scene.ModeRain, scene.ModeSnow, scene.ModeStorm}

// Metrics holds the Prometheus counters, histograms, and gauges for the scene engine.
// It implements engine.FrameObserver
type Metrics struct {
	FramesRendered prometheus.Counter
	FramesStalled  prometheus.Counter
	SceneRestarts  prometheus.Counter
	Particles      prometheus.Gauge
	Intensity      prometheus.Gauge
	FrameDuration  prometheus.Histogram

	// labels: mode={clear,fog,rain,snow,storm}, 1 for the active mode
	ActiveMode *prometheus.GaugeVec

	registry prometheus.Gatherer
}

func newMetrics() *Metrics {
	return &Metrics{
		FramesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_scene",
			Name:      "frames_rendered_total",
			Help:      "Total frames simulated and drawn.",
		}),
		FramesStalled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_scene",
			Name:      "frames_stalled_total",
			Help:      "Frames whose wall-clock delta exceeded the step cap.",
		}),
		SceneRestarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_scene",
			Name:      "scene_restarts_total",
			Help:      "Loop restarts caused by scene parameter changes.",
		}),
		Particles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_scene",
			Name:      "particles",
			Help:      "Live particles in the pool after the last frame.",
		}),
		Intensity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_scene",
			Name:      "intensity",
			Help:      "Precipitation intensity of the active scene.",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_scene",
			Name:      "frame_duration_seconds",
			Help:      "Time spent simulating and drawing one frame.",
			Buckets:   []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066},
		}),
		ActiveMode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weather_scene",
			Name:      "active_mode",
			Help:      "1 for the mode currently rendered, 0 otherwise.",
		}, []string{"mode"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.FramesRendered,
		m.FramesStalled,
		m.SceneRestarts,
		m.Particles,
		m.Intensity,
		m.FrameDuration,
		m.ActiveMode,
	}
}

// NewMetrics creates and registers all scene metrics with the default Prometheus registry
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	m.registry = prometheus.DefaultGatherer
	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests
func NewMetricsForTesting() *Metrics {
	m := newMetrics()
	reg := prometheus.NewRegistry()
	reg.MustRegister(m.collectors()...)
	m.registry = reg
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveFrame implements engine.FrameObserver
func (m *Metrics) ObserveFrame(snap engine.Snapshot, elapsed time.Duration) {
	m.FramesRendered.Inc()
	if snap.Stalled {
		m.FramesStalled.Inc()
	}
	m.Particles.Set(float64(len(snap.Particles)))
	m.FrameDuration.Observe(elapsed.Seconds())
}

// ObserveRestart records a new scene and flips the active mode gauge
func (m *Metrics) ObserveRestart(p *scene.Params) {
	m.SceneRestarts.Inc()
	if p == nil {
		return
	}
	m.Intensity.Set(p.Intensity)
	for _, mode := range modes {
		v := 0.0
		if mode == p.Mode {
			v = 1
		}
		m.ActiveMode.WithLabelValues(mode.String()).Set(v)
	}
}
