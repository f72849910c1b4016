// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/mohammadtout24/electionV2/clock"
	"github.com/mohammadtout24/electionV2/cliparse"
	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/metrics"
	"github.com/mohammadtout24/electionV2/middleware"
	"github.com/mohammadtout24/electionV2/models"
	"github.com/mohammadtout24/electionV2/store"
)

// DeadlineLayout is how the deadline is shown to people
const DeadlineLayout = "January 2, 2006 at 3:04 PM MST"

type ResultsHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	ledger  *store.Ledger
	policy  election.Policy
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config, clk clock.Clock, m *metrics.Metrics) *ResultsHandler {
	gate := election.NewGate(cfg.Deadline)
	return &ResultsHandler{
		db:      db,
		cfg:     cfg,
		ledger:  store.NewLedger(db, gate, clk),
		policy:  election.NewPolicy(gate),
		clock:   clk,
		metrics: m,
	}
}

// GetElection handles GET /election
// Returns voting state, the caller's own vote and the results their role
// may see. Counts are recomputed on every request.
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	now := h.clock.Now()

	tally, err := h.ledger.Tally(r.Context())
	if err != nil {
		electionError(w, err, "Failed to load results")
		return
	}

	vote, hasVoted, err := h.ledger.Lookup(r.Context(), actor.Identity)
	if err != nil {
		electionError(w, err, "Failed to load vote")
		return
	}

	resp := models.ElectionResponse{
		VotingClosed: !h.policy.CanMutateVote(now),
		Deadline:     h.cfg.Deadline.Format(DeadlineLayout),
		DeadlineAt:   h.cfg.Deadline,
		ClosesIn:     humanize.RelTime(h.cfg.Deadline, now, "ago", "from now"),
		IsAdmin:      h.policy.CanViewFullResults(actor.Role),
		IsCandidate:  actor.Role.Kind == election.RoleCandidate,
		Username:     actor.Username,
		HasVoted:     hasVoted,
		View:         election.Project(tally, actor.Role),
	}
	if hasVoted {
		resp.VotedCandidateID = &vote.CandidateID
		resp.VotedForName = &vote.CandidateName
	}

	h.metrics.ResultsViews.WithLabelValues(string(resp.View.Role)).Inc()
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetCandidateResults handles GET /candidate/results
// Only candidates may look; they see their own row in full and every
// other row as a bare count.
func (h *ResultsHandler) GetCandidateResults(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	if !h.policy.CanViewSelfResults(actor.Role) {
		forbidden(w, "Only candidates can view this page")
		return
	}

	tally, err := h.ledger.Tally(r.Context())
	if err != nil {
		electionError(w, err, "Failed to load results")
		return
	}
	view := election.Project(tally, actor.Role)

	h.metrics.ResultsViews.WithLabelValues(string(view.Role)).Inc()
	middleware.JSONResponse(w, http.StatusOK, models.CandidateResultsResponse{
		Results:    view.SelfResults,
		TotalVotes: tally.Total,
	})
}
