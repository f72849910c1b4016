// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_IndependentRegistries(t *testing.T) {
	// Two servers in one process must not collide
	a := New()
	b := New()

	a.VotesCast.WithLabelValues(OutcomeCreated).Inc()

	if got := testutil.ToFloat64(a.VotesCast.WithLabelValues(OutcomeCreated)); got != 1 {
		t.Errorf("a votes_cast_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(b.VotesCast.WithLabelValues(OutcomeCreated)); got != 0 {
		t.Errorf("b votes_cast_total = %v, want 0", got)
	}
}

func TestCounters(t *testing.T) {
	m := New()

	m.VotesCast.WithLabelValues(OutcomeCreated).Inc()
	m.VotesCast.WithLabelValues(OutcomeUpdated).Inc()
	m.VotesCast.WithLabelValues(OutcomeUpdated).Inc()
	m.ResultsViews.WithLabelValues("admin").Inc()
	m.Logins.WithLabelValues("success").Inc()
	m.ObserveEvent(errors.New("broker down"))
	m.ObserveEvent(nil)
	m.ObserveEvent(nil)
	m.CastDuration.Observe(0.002)

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"created", testutil.ToFloat64(m.VotesCast.WithLabelValues(OutcomeCreated)), 1},
		{"updated", testutil.ToFloat64(m.VotesCast.WithLabelValues(OutcomeUpdated)), 2},
		{"closed", testutil.ToFloat64(m.VotesCast.WithLabelValues(OutcomeClosed)), 0},
		{"admin views", testutil.ToFloat64(m.ResultsViews.WithLabelValues("admin")), 1},
		{"logins", testutil.ToFloat64(m.Logins.WithLabelValues("success")), 1},
		{"events failed", testutil.ToFloat64(m.EventsPublished.WithLabelValues(EventFailed)), 1},
		{"events delivered", testutil.ToFloat64(m.EventsPublished.WithLabelValues(EventDelivered)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.want {
				t.Errorf("got %v, want %v", tt.value, tt.want)
			}
		})
	}

	if n := testutil.CollectAndCount(m.CastDuration); n != 1 {
		t.Errorf("CastDuration collected %d metrics, want 1", n)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.VotesCast.WithLabelValues(OutcomeCreated).Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	for _, want := range []string{
		`election_votes_cast_total{outcome="created"} 1`,
		"election_vote_cast_duration_seconds",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("Expected %q in metrics output", want)
		}
	}
}
