// Package metrics counts slider interactions with prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
)

type Metrics struct {
	registry *prometheus.Registry

	DragCount       *prometheus.CounterVec
	TrackClickCount *prometheus.CounterVec
	ChangeCount     *prometheus.CounterVec
	SelectionMin    *prometheus.GaugeVec
	SelectionMax    *prometheus.GaugeVec
	DragActive      *prometheus.GaugeVec
}

func New(namespace string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.DragCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slider",
			Name:      "drags_total",
			Help:      "the number of handle drag gestures started",
		},
		[]string{"slider", "handle"},
	)

	m.TrackClickCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slider",
			Name:      "track_clicks_total",
			Help:      "the number of track clicks, by the handle they moved",
		},
		[]string{"slider", "handle"},
	)

	m.ChangeCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slider",
			Name:      "selection_changes_total",
			Help:      "the number of accepted selection mutations",
		},
		[]string{"slider"},
	)

	m.SelectionMin = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "slider",
			Name:      "selection_min",
			Help:      "the current lower end of the selection",
		},
		[]string{"slider"},
	)

	m.SelectionMax = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "slider",
			Name:      "selection_max",
			Help:      "the current upper end of the selection",
		},
		[]string{"slider"},
	)

	m.DragActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "slider",
			Name:      "drag_active",
			Help:      "1 while a handle of the slider is being dragged",
		},
		[]string{"slider"},
	)

	m.registry.MustRegister(
		m.DragCount,
		m.TrackClickCount,
		m.ChangeCount,
		m.SelectionMin,
		m.SelectionMax,
		m.DragActive,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ForSlider returns hooks that record into m under the given slider name.
func (m *Metrics) ForSlider(name string) rangesel.Hooks {
	return sliderHooks{m: m, name: name}
}

type sliderHooks struct {
	m    *Metrics
	name string
}

func (h sliderHooks) DragStarted(handle rangesel.HandleID) {
	h.m.DragCount.WithLabelValues(h.name, handle.String()).Inc()
	h.m.DragActive.WithLabelValues(h.name).Set(1)
}

func (h sliderHooks) DragEnded(rangesel.HandleID) {
	h.m.DragActive.WithLabelValues(h.name).Set(0)
}

func (h sliderHooks) TrackClicked(handle rangesel.HandleID) {
	h.m.TrackClickCount.WithLabelValues(h.name, handle.String()).Inc()
}

func (h sliderHooks) SelectionChanged(sel rangesel.Selection) {
	h.m.ChangeCount.WithLabelValues(h.name).Inc()
	h.m.SelectionMin.WithLabelValues(h.name).Set(sel.Min)
	h.m.SelectionMax.WithLabelValues(h.name).Set(sel.Max)
}
