// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms).

# CORS

	server := http.Server{Handler: middleware.CORS(mux)}

Reflects the request origin and allows credentials, since the voter
session travels in a cookie.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorWithCode(w, http.StatusConflict, "Voting has closed", "voting_closed")

Error bodies have the shape {"error", "message", "code"}.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

The address is hashed before it is stored with a vote.
*/
package middleware
