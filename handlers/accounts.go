// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/cliparse"
	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/identity"
	"github.com/mohammadtout24/electionV2/metrics"
	"github.com/mohammadtout24/electionV2/middleware"
	"github.com/mohammadtout24/electionV2/models"
	"github.com/mohammadtout24/electionV2/store"
)

type AccountHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	accounts *store.Accounts
	resolver *identity.Resolver
	policy   election.Policy
	metrics  *metrics.Metrics
}

func NewAccountHandler(db *sql.DB, cfg cliparse.Config, resolver *identity.Resolver, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{
		db:       db,
		cfg:      cfg,
		accounts: store.NewAccounts(db),
		resolver: resolver,
		policy:   election.NewPolicy(election.NewGate(cfg.Deadline)),
		metrics:  m,
	}
}

// Login handles POST /login
// The browser keeps its anonymous token; the session gains the account.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorWithCode(w, http.StatusBadRequest, "Invalid JSON", codeInvalidRequest)
		return
	}

	acct, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.metrics.Logins.WithLabelValues("rejected").Inc()
		middleware.ErrorWithCode(w, http.StatusUnauthorized, "Invalid username or password", codeInvalidCredentials)
		return
	}
	if err != nil {
		h.metrics.Logins.WithLabelValues("error").Inc()
		electionError(w, err, "Failed to log in")
		return
	}

	_, role, err := h.accounts.ResolveRole(r.Context(), acct.ID)
	if err != nil {
		h.metrics.Logins.WithLabelValues("error").Inc()
		electionError(w, err, "Failed to log in")
		return
	}

	h.resolver.Login(w, actor, acct.ID)
	h.metrics.Logins.WithLabelValues("success").Inc()
	slog.Info("account logged in", "account_id", acct.ID, "role", role.Kind)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		AccountID: acct.ID,
		Username:  acct.Username,
		Role:      string(role.Kind),
		Message:   "Logged in",
	})
}

// Logout handles POST /logout
// The browser gets a fresh anonymous identity.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	if !actor.Authenticated() {
		middleware.ErrorWithCode(w, http.StatusUnauthorized, "Not logged in", election.Code(election.ErrUnauthorized))
		return
	}

	if err := h.resolver.Logout(w); err != nil {
		slog.Error("failed to rotate session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	slog.Info("account logged out", "account_id", actor.AccountID)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

// ListAccounts handles GET /accounts
// Every candidate may list all non-admin accounts with phone numbers.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentActor(w, r)
	if !ok {
		return
	}
	if !h.policy.CanViewAllIdentities(actor.Role) {
		forbidden(w, "Only candidates can view the account list")
		return
	}

	roster, err := h.accounts.Roster(r.Context())
	if err != nil {
		electionError(w, err, "Failed to load accounts")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.AccountRosterResponse{Accounts: roster})
}
