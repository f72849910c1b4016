// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists votes, candidates and accounts.

# Ledger

The Ledger keeps one vote per voter identity:

	ledger := store.NewLedger(db, election.NewGate(cfg.Deadline), clock.Real())
	vote, created, err := ledger.Cast(ctx, identity, candidateID, meta)

Cast checks, in order: the deadline (ErrVotingClosed), the selection
(ErrMissingSelection), the candidate (ErrCandidateNotFound). It then
updates the identity's row or inserts one inside a transaction. The insert
carries ON CONFLICT (voter_kind, voter_key) DO UPDATE, so two concurrent
first votes for one identity still leave a single row; the later commit
wins.

Lookup matches the identity exactly. Counts and Tally feed the result
aggregator with every candidate, including those without votes.

# Roster and Accounts

Roster lists and creates candidates. Accounts authenticates logins,
resolves each account's role and lists the account roster.

# Errors

Driver failures are wrapped so errors.Is(err, election.ErrStorage) holds.
Unique constraint violations from either driver surface as ErrDuplicate.
*/
package store
