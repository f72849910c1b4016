// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CastVoteRequest: candidate_id
  - LoginRequest: username, password
  - CreateCandidateRequest: name, party, topic, bio, image_url, owner_account_id

# Response Types

Types for JSON responses:

  - ElectionResponse: voting state, own vote, role projection
  - CastVoteResponse: vote_id, status ("created" or "updated"), message
  - MyVoteResponse: the caller's current vote
  - CandidateResultsResponse: self-only results for candidates
  - LoginResponse, AccountRosterResponse
  - ErrorResponse: error, message, code

# Domain Types

  - Account: login account (password hash never serialized)
  - Candidate: roster entry (owner account never serialized)
  - Vote: one vote per voter identity (identity never serialized)
  - AccountRosterEntry: account with phone and linked candidate

Result rows themselves (election.ResultRow, election.SelfResultRow,
election.BallotEntry) live in package election next to the projection
rules that fill them.
*/
package models
