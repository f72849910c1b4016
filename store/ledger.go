// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/clock"
	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/models"
)

// CastMeta is request metadata stored alongside a vote.
type CastMeta struct {
	IPHash    string
	UserAgent string
}

// Ledger holds at most one vote per voter identity. Uniqueness is
// enforced by the UNIQUE (voter_kind, voter_key) constraint; Cast never
// inserts blindly.
type Ledger struct {
	db    *sql.DB
	gate  election.Gate
	clock clock.Clock
}

func NewLedger(db *sql.DB, gate election.Gate, clk clock.Clock) *Ledger {
	return &Ledger{db: db, gate: gate, clock: clk}
}

// Cast records identity's vote for candidateID, replacing any earlier
// vote by the same identity. created reports whether a new row was made.
func (l *Ledger) Cast(ctx context.Context, identity election.VoterIdentity, candidateID string, meta CastMeta) (vote models.Vote, created bool, err error) {
	now := l.clock.Now()
	if l.gate.IsClosed(now) {
		return models.Vote{}, false, election.ErrVotingClosed
	}
	if !identity.Valid() {
		return models.Vote{}, false, fmt.Errorf("cast: %w: no voter identity", election.ErrUnauthorized)
	}
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return models.Vote{}, false, election.ErrMissingSelection
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Vote{}, false, storageErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var candidateName string
	err = tx.QueryRowContext(ctx, `
		SELECT name FROM candidate WHERE id = $1
	`, candidateID).Scan(&candidateName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, false, election.ErrCandidateNotFound
	}
	if err != nil {
		return models.Vote{}, false, storageErr("failed to query candidate", err)
	}

	// Check if this identity already voted
	var existingID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM vote WHERE voter_kind = $1 AND voter_key = $2
	`, string(identity.Kind), identity.Key).Scan(&existingID)
	created = errors.Is(err, sql.ErrNoRows)
	if err != nil && !created {
		return models.Vote{}, false, storageErr("failed to query vote", err)
	}

	ts := now.UTC()
	if created {
		voteID, err := auth.GenerateID(16)
		if err != nil {
			return models.Vote{}, false, storageErr("failed to generate vote id", err)
		}

		// A concurrent first vote for the same identity lands on the
		// conflict clause and becomes an update of the winning row.
		_, err = tx.ExecContext(ctx, `
			INSERT INTO vote (id, voter_kind, voter_key, candidate_id, ip_hash, user_agent, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (voter_kind, voter_key) DO UPDATE
			SET candidate_id = excluded.candidate_id,
			    ip_hash = excluded.ip_hash,
			    user_agent = excluded.user_agent,
			    updated_at = excluded.updated_at
		`, voteID, string(identity.Kind), identity.Key, candidateID,
			nullString(meta.IPHash), nullString(meta.UserAgent), ts, ts)
		if err != nil {
			return models.Vote{}, false, storageErr("failed to insert vote", err)
		}
	} else {
		_, err = tx.ExecContext(ctx, `
			UPDATE vote
			SET candidate_id = $1, ip_hash = $2, user_agent = $3, updated_at = $4
			WHERE id = $5
		`, candidateID, nullString(meta.IPHash), nullString(meta.UserAgent), ts, existingID)
		if err != nil {
			return models.Vote{}, false, storageErr("failed to update vote", err)
		}
	}

	vote, err = scanVote(tx.QueryRowContext(ctx, lookupQuery, string(identity.Kind), identity.Key))
	if err != nil {
		return models.Vote{}, false, storageErr("failed to read back vote", err)
	}
	vote.Identity = identity

	if err := tx.Commit(); err != nil {
		return models.Vote{}, false, storageErr("failed to commit vote", err)
	}

	return vote, created, nil
}

// Lookup returns the vote recorded under exactly this identity. A
// logged-in caller is looked up by account only, so an earlier anonymous
// vote from the same browser is never reported as theirs.
func (l *Ledger) Lookup(ctx context.Context, identity election.VoterIdentity) (models.Vote, bool, error) {
	if !identity.Valid() {
		return models.Vote{}, false, nil
	}

	vote, err := scanVote(l.db.QueryRowContext(ctx, lookupQuery, string(identity.Kind), identity.Key))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, false, nil
	}
	if err != nil {
		return models.Vote{}, false, storageErr("failed to query vote", err)
	}
	vote.Identity = identity
	return vote, true, nil
}

// Counts returns every candidate with the number of votes referencing
// it, zero included.
func (l *Ledger) Counts(ctx context.Context) ([]election.CandidateCount, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.party, c.topic, c.image_url, c.owner_account_id, COUNT(v.id)
		FROM candidate c
		LEFT JOIN vote v ON v.candidate_id = c.id
		GROUP BY c.id, c.name, c.party, c.topic, c.image_url, c.owner_account_id
	`)
	if err != nil {
		return nil, storageErr("failed to count votes", err)
	}
	defer rows.Close()

	counts := []election.CandidateCount{}
	for rows.Next() {
		var c election.CandidateCount
		var image, owner sql.NullString
		if err := rows.Scan(&c.CandidateID, &c.Name, &c.Party, &c.Topic, &image, &owner, &c.Votes); err != nil {
			return nil, storageErr("failed to scan vote count", err)
		}
		c.ImageURL = image.String
		c.OwnerAccountID = owner.String
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to iterate vote counts", err)
	}

	return counts, nil
}

// Tally aggregates the current counts.
func (l *Ledger) Tally(ctx context.Context) (election.Tally, error) {
	counts, err := l.Counts(ctx)
	if err != nil {
		return election.Tally{}, err
	}
	return election.Aggregate(counts), nil
}

const lookupQuery = `
	SELECT v.id, v.candidate_id, c.name, v.created_at, v.updated_at
	FROM vote v
	JOIN candidate c ON c.id = v.candidate_id
	WHERE v.voter_kind = $1 AND v.voter_key = $2
`

func scanVote(row *sql.Row) (models.Vote, error) {
	var v models.Vote
	err := row.Scan(&v.ID, &v.CandidateID, &v.CandidateName, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}
