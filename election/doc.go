// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election holds the storage-free rules of the election: who is
voting, whether voting is open, what each role may see, and how counts
become a tally.

# Identities and Roles

A vote is recorded under a VoterIdentity, either an account id or an
anonymous session token:

	election.AccountIdentity(accountID)
	election.SessionIdentity(token)

Each request carries one Actor whose Role is one of Voter, Candidate
(with the owned candidate id) or Admin.

# Deadline

	gate := election.NewGate(cfg.Deadline)
	gate.IsOpen(clock.Now())

The deadline instant itself is still open.

# Tally and Projection

	tally := election.Aggregate(counts)
	view := election.Project(tally, actor.Role)

Admins get every row sorted by votes. Candidates get counts for everyone
with names, images and ids removed from all rows but their own, and no
ballot. Voters get the ballot only.

# Errors

ErrMissingSelection, ErrCandidateNotFound, ErrVotingClosed, ErrUnauthorized
and ErrStorage classify every failure. Code maps them to API error codes.
*/
package election
