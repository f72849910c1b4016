// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/clock"
	"github.com/mohammadtout24/electionV2/cliparse"
	"github.com/mohammadtout24/electionV2/events"
	"github.com/mohammadtout24/electionV2/handlers"
	"github.com/mohammadtout24/electionV2/identity"
	"github.com/mohammadtout24/electionV2/metrics"
	"github.com/mohammadtout24/electionV2/middleware"
	"github.com/mohammadtout24/electionV2/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, clk clock.Clock, m *metrics.Metrics, pub events.Publisher) *http.ServeMux {
	mux := http.NewServeMux()

	resolver := identity.NewResolver(auth.NewSessionCodec(cfg.SessionSecret), store.NewAccounts(db), cfg.SecureCookies)

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(db, cfg, clk, m, pub)
	resultsHandler := handlers.NewResultsHandler(db, cfg, clk, m)
	candidateHandler := handlers.NewCandidateHandler(db, cfg)
	accountHandler := handlers.NewAccountHandler(db, cfg, resolver, m)

	// withActor logs the request and resolves the caller once
	withActor := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(resolver.WithActor(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Election page and results
	mux.HandleFunc("GET /election", withActor(resultsHandler.GetElection))
	mux.HandleFunc("GET /candidate/results", withActor(resultsHandler.GetCandidateResults))

	// Voting
	mux.HandleFunc("POST /votes", withActor(votingHandler.CastVote))
	mux.HandleFunc("GET /votes/mine", withActor(votingHandler.GetMyVote))

	// Candidates
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("GET /candidates/{id}", withActor(candidateHandler.Get))
	mux.HandleFunc("POST /candidates", withActor(candidateHandler.Create))

	// Accounts
	mux.HandleFunc("POST /login", withActor(accountHandler.Login))
	mux.HandleFunc("POST /logout", withActor(accountHandler.Logout))
	mux.HandleFunc("GET /accounts", withActor(accountHandler.ListAccounts))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("election API v1"))
	})

	return mux
}
