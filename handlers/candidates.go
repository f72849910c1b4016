// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mohammadtout24/electionV2/cliparse"
	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/middleware"
	"github.com/mohammadtout24/electionV2/models"
	"github.com/mohammadtout24/electionV2/store"
)

type CandidateHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	roster   *store.Roster
	accounts *store.Accounts
	policy   election.Policy
}

func NewCandidateHandler(db *sql.DB, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{
		db:       db,
		cfg:      cfg,
		roster:   store.NewRoster(db),
		accounts: store.NewAccounts(db),
		policy:   election.NewPolicy(election.NewGate(cfg.Deadline)),
	}
}

// List handles GET /candidates
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.roster.List(r.Context())
	if err != nil {
		electionError(w, err, "Failed to load candidates")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.CandidateListResponse{Candidates: candidates})
}

// Get handles GET /candidates/{id}
// Candidate profiles are for logged-in accounts only.
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	if !actor.Authenticated() {
		middleware.ErrorWithCode(w, http.StatusUnauthorized, "Login required", election.Code(election.ErrUnauthorized))
		return
	}

	candidateID := r.PathValue("id")
	if candidateID == "" {
		middleware.ErrorWithCode(w, http.StatusBadRequest, "id is required", codeInvalidRequest)
		return
	}

	candidate, err := h.roster.Get(r.Context(), candidateID)
	if err != nil {
		electionError(w, err, "Failed to load candidate")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// Create handles POST /candidates
// Admin only. The owner account, when given, must exist and own no other
// candidate.
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	if !h.policy.CanManageCandidates(actor.Role) {
		forbidden(w, "Only admins can add candidates")
		return
	}

	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorWithCode(w, http.StatusBadRequest, "Invalid JSON", codeInvalidRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		middleware.ErrorWithCode(w, http.StatusBadRequest, "name is required", codeInvalidRequest)
		return
	}

	if req.OwnerAccountID != "" {
		_, err := h.accounts.Get(r.Context(), req.OwnerAccountID)
		if errors.Is(err, store.ErrAccountNotFound) {
			middleware.ErrorWithCode(w, http.StatusBadRequest, "Owner account not found", codeInvalidRequest)
			return
		}
		if err != nil {
			electionError(w, err, "Failed to load owner account")
			return
		}
	}

	candidate, err := h.roster.Create(r.Context(), req)
	if errors.Is(err, store.ErrDuplicate) {
		middleware.ErrorWithCode(w, http.StatusConflict, "That account already has a candidate", codeDuplicate)
		return
	}
	if err != nil {
		electionError(w, err, "Failed to create candidate")
		return
	}

	slog.Info("candidate created", "candidate_id", candidate.ID, "by", actor.Username)
	middleware.JSONResponse(w, http.StatusCreated, candidate)
}
