// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes of the election API.

# Route Registration

	mux := router.NewRouter(db, cfg, clock.Real(), metrics.New(), events.NopPublisher{})

# Endpoints

Service:

	GET /health  - Liveness
	GET /metrics - Prometheus metrics
	GET /        - Banner

Election (session cookie resolved on every call):

	GET  /election          - Voting state and the caller's view of results
	GET  /candidate/results - Own standing, candidates only
	POST /votes             - Cast or change the caller's vote
	GET  /votes/mine        - The caller's vote

Candidates:

	GET  /candidates      - Ballot listing
	GET  /candidates/{id} - Profile, logged-in accounts only
	POST /candidates      - Add a candidate, admins only

Accounts:

	POST /login    - Attach an account to the session
	POST /logout   - Drop the account and rotate the session
	GET  /accounts - Account roster, candidates only

# Handler Initialization

Handlers share one identity.Resolver, which signs session cookies with
cfg.SessionSecret. The clock decides when the deadline has passed.
*/
package router
