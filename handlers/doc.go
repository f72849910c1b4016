// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the election API.

# Handler Types

Each handler is a struct built from the database and config:

  - VotingHandler: casting and reading back the caller's vote
  - ResultsHandler: the election page and the candidate standing page
  - CandidateHandler: the candidate roster
  - AccountHandler: login, logout and the account roster

	votingHandler := handlers.NewVotingHandler(db, cfg, clock.Real(), m, pub)

Every handler expects identity.Resolver.WithActor to have run first; it
reads the caller from the request context.

# Voting

	POST /votes        {"candidate_id": "..."}  → 201 created, 200 updated
	GET  /votes/mine                            → 404 until the caller votes

A caller holds one vote. Voting again before the deadline replaces it.
After the deadline every cast returns 409 with code voting_closed, whatever
the body says.

# Results

	GET /election           → voting state plus the caller's projection
	GET /candidate/results  → candidates only

Admins see every candidate with counts and percentages. Candidates see
their own row in full and other rows as bare counts. Voters see the
ballot and nothing else.

# Errors

Errors use {"error", "message", "code"}:

	400 missing_selection     404 candidate_not_found
	409 voting_closed         500 storage_failure
	401 unauthorized          403 forbidden
*/
package handlers
