// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus collectors for the election service.

	m := metrics.New()
	m.VotesCast.WithLabelValues(metrics.OutcomeCreated).Inc()
	mux.Handle("GET /metrics", m.Handler())

Counters carry no voter or candidate labels; only outcomes and roles.
ObserveEvent is the delivery callback for the event publisher.
*/
package metrics
