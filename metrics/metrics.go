// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "election"

// Cast outcomes, used as the outcome label of VotesCast.
const (
	OutcomeCreated  = "created"
	OutcomeUpdated  = "updated"
	OutcomeClosed   = "closed"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Event delivery results, used as the result label of EventsPublished.
const (
	EventDelivered = "ok"
	EventFailed    = "failed"
)

// Metrics holds the collectors of one server. Each server registers on
// its own registry so tests can build as many as they like.
type Metrics struct {
	VotesCast       *prometheus.CounterVec
	CastDuration    prometheus.Histogram
	ResultsViews    *prometheus.CounterVec
	Logins          *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec

	registry *prometheus.Registry
}

// New registers the election collectors, plus the Go runtime and
// process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		VotesCast: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_cast_total",
				Help:      "Vote submissions by outcome",
			},
			[]string{"outcome"},
		),
		CastDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "vote_cast_duration_seconds",
				Help:      "Time spent recording a vote, storage included",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
		),
		ResultsViews: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "results_views_total",
				Help:      "Election page views by the role of the viewer",
			},
			[]string{"role"},
		),
		Logins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Login attempts by result",
			},
			[]string{"result"},
		),
		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vote_events_published_total",
				Help:      "Vote events handed to the event stream, by result",
			},
			[]string{"result"},
		),
		registry: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveEvent counts one vote event by whether the stream accepted it.
func (m *Metrics) ObserveEvent(err error) {
	if err != nil {
		m.EventsPublished.WithLabelValues(EventFailed).Inc()
		return
	}
	m.EventsPublished.WithLabelValues(EventDelivered).Inc()
}
