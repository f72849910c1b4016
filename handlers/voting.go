// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/clock"
	"github.com/mohammadtout24/electionV2/cliparse"
	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/events"
	"github.com/mohammadtout24/electionV2/metrics"
	"github.com/mohammadtout24/electionV2/middleware"
	"github.com/mohammadtout24/electionV2/models"
	"github.com/mohammadtout24/electionV2/store"
)

// publishTimeout bounds how long a vote response waits on the event stream.
// Publishers queue events, so only a cold partition lookup can take this long.
const publishTimeout = 250 * time.Millisecond

const maxUserAgentLen = 255

type VotingHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	ledger  *store.Ledger
	policy  election.Policy
	clock   clock.Clock
	metrics *metrics.Metrics
	events  events.Publisher
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config, clk clock.Clock, m *metrics.Metrics, pub events.Publisher) *VotingHandler {
	gate := election.NewGate(cfg.Deadline)
	return &VotingHandler{
		db:      db,
		cfg:     cfg,
		ledger:  store.NewLedger(db, gate, clk),
		policy:  election.NewPolicy(gate),
		clock:   clk,
		metrics: m,
		events:  pub,
	}
}

// CastVote handles POST /votes
// Creates the caller's vote, or replaces it while voting is open.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// A closed election reports closed whatever the body holds
		if !h.policy.CanMutateVote(h.clock.Now()) {
			h.metrics.VotesCast.WithLabelValues(metrics.OutcomeClosed).Inc()
			electionError(w, election.ErrVotingClosed, "")
			return
		}
		h.metrics.VotesCast.WithLabelValues(metrics.OutcomeRejected).Inc()
		middleware.ErrorWithCode(w, http.StatusBadRequest, "Invalid JSON", codeInvalidRequest)
		return
	}

	meta := store.CastMeta{
		IPHash:    auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionSecret),
		UserAgent: truncate(r.UserAgent(), maxUserAgentLen),
	}

	start := time.Now()
	vote, created, err := h.ledger.Cast(r.Context(), actor.Identity, req.CandidateID, meta)
	h.metrics.CastDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		h.metrics.VotesCast.WithLabelValues(castOutcome(err)).Inc()
		electionError(w, err, "Failed to record vote")
		return
	}

	status := models.StatusUpdated
	code := http.StatusOK
	message := "Your vote has been updated"
	if created {
		status = models.StatusCreated
		code = http.StatusCreated
		message = "Your vote has been recorded"
	}
	h.metrics.VotesCast.WithLabelValues(status).Inc()

	slog.Info("vote cast",
		"vote_id", vote.ID,
		"candidate_id", vote.CandidateID,
		"identity_kind", actor.Identity.Kind,
		"status", status,
	)

	h.publish(r.Context(), events.VoteEvent{
		VoteID:      vote.ID,
		CandidateID: vote.CandidateID,
		Status:      status,
		At:          vote.UpdatedAt,
	})

	middleware.JSONResponse(w, code, models.CastVoteResponse{
		VoteID:        vote.ID,
		CandidateID:   vote.CandidateID,
		CandidateName: vote.CandidateName,
		Status:        status,
		Message:       message,
	})
}

// GetMyVote handles GET /votes/mine
func (h *VotingHandler) GetMyVote(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	vote, found, err := h.ledger.Lookup(r.Context(), actor.Identity)
	if err != nil {
		electionError(w, err, "Failed to load vote")
		return
	}
	if !found {
		middleware.ErrorWithCode(w, http.StatusNotFound, "You have not voted yet", codeNotFound)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVoteResponse{
		VoteID:        vote.ID,
		CandidateID:   vote.CandidateID,
		CandidateName: vote.CandidateName,
		VotedAt:       vote.UpdatedAt,
	})
}

// publish hands ev to the event stream. The vote is already committed, so
// a failure is only logged. Delivery itself is counted by the publisher.
func (h *VotingHandler) publish(ctx context.Context, ev events.VoteEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := h.events.Publish(ctx, ev); err != nil {
		h.metrics.ObserveEvent(err)
		slog.Warn("failed to publish vote event", "error", err, "vote_id", ev.VoteID)
	}
}

func castOutcome(err error) string {
	switch election.Code(err) {
	case "voting_closed":
		return metrics.OutcomeClosed
	case "storage_failure":
		return metrics.OutcomeError
	default:
		return metrics.OutcomeRejected
	}
}

// truncate cuts s to at most n bytes without splitting a character, and
// drops any invalid UTF-8 so PostgreSQL accepts the result.
func truncate(s string, n int) string {
	s = strings.ToValidUTF8(s, "")
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
