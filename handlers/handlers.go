// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/identity"
	"github.com/mohammadtout24/electionV2/middleware"
)

// Codes for failures outside the election error taxonomy
const (
	codeInvalidRequest     = "invalid_request"
	codeForbidden          = "forbidden"
	codeNotFound           = "not_found"
	codeInvalidCredentials = "invalid_credentials"
	codeDuplicate          = "duplicate"
)

// currentActor returns the actor resolved by identity.Resolver.WithActor.
// It writes a 500 when the route was mounted without it.
func currentActor(w http.ResponseWriter, r *http.Request) (election.Actor, bool) {
	actor, ok := identity.FromContext(r.Context())
	if !ok {
		slog.Error("handler reached without a resolved actor", "path", r.URL.Path)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session unavailable")
		return election.Actor{}, false
	}
	return actor, true
}

// electionError writes the status and code for an election error.
// Storage failures are logged and answered with fallback.
func electionError(w http.ResponseWriter, err error, fallback string) {
	code := election.Code(err)
	switch {
	case errors.Is(err, election.ErrMissingSelection):
		middleware.ErrorWithCode(w, http.StatusBadRequest, "Please select a candidate", code)
	case errors.Is(err, election.ErrCandidateNotFound):
		middleware.ErrorWithCode(w, http.StatusNotFound, "Candidate not found", code)
	case errors.Is(err, election.ErrVotingClosed):
		middleware.ErrorWithCode(w, http.StatusConflict, "Voting has closed", code)
	case errors.Is(err, election.ErrUnauthorized):
		middleware.ErrorWithCode(w, http.StatusUnauthorized, "Not permitted", code)
	default:
		slog.Error(fallback, "error", err)
		middleware.ErrorWithCode(w, http.StatusInternalServerError, fallback, code)
	}
}

func forbidden(w http.ResponseWriter, message string) {
	middleware.ErrorWithCode(w, http.StatusForbidden, message, codeForbidden)
}
