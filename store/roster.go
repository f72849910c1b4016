// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/models"
)

const (
	DefaultParty = "Independent"
	DefaultTopic = "General"
)

// Roster reads and maintains the candidate list. Candidates are created
// by administrators only; the voting core only reads them.
type Roster struct {
	db *sql.DB
}

func NewRoster(db *sql.DB) *Roster {
	return &Roster{db: db}
}

const candidateColumns = `id, name, party, topic, bio, image_url, owner_account_id, created_at`

// List returns every candidate sorted by name.
func (r *Roster) List(ctx context.Context) ([]models.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+candidateColumns+`
		FROM candidate
		ORDER BY name, id
	`)
	if err != nil {
		return nil, storageErr("failed to query candidates", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, storageErr("failed to scan candidate", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to iterate candidates", err)
	}
	return candidates, nil
}

// Get returns one candidate or election.ErrCandidateNotFound.
func (r *Roster) Get(ctx context.Context, id string) (models.Candidate, error) {
	c, err := scanCandidate(r.db.QueryRowContext(ctx, `
		SELECT `+candidateColumns+`
		FROM candidate
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Candidate{}, election.ErrCandidateNotFound
	}
	if err != nil {
		return models.Candidate{}, storageErr("failed to query candidate", err)
	}
	return c, nil
}

// OwnedBy returns the id of the candidate linked to accountID, if any.
func (r *Roster) OwnedBy(ctx context.Context, accountID string) (string, bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `
		SELECT id FROM candidate WHERE owner_account_id = $1
	`, accountID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageErr("failed to query owned candidate", err)
	}
	return id, true, nil
}

// Create adds a candidate. Empty party and topic get their defaults.
// ErrDuplicate is returned when the owner account already has a candidate.
func (r *Roster) Create(ctx context.Context, req models.CreateCandidateRequest) (models.Candidate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Candidate{}, errors.New("candidate name is required")
	}

	id, err := auth.GenerateID(12)
	if err != nil {
		return models.Candidate{}, storageErr("failed to generate candidate id", err)
	}

	c := models.Candidate{
		ID:             id,
		Name:           name,
		Party:          withDefault(req.Party, DefaultParty),
		Topic:          withDefault(req.Topic, DefaultTopic),
		Bio:            req.Bio,
		ImageURL:       optional(req.ImageURL),
		OwnerAccountID: optional(req.OwnerAccountID),
		CreatedAt:      time.Now().UTC(),
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO candidate (`+candidateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ID, c.Name, c.Party, c.Topic, c.Bio, c.ImageURL, c.OwnerAccountID, c.CreatedAt)
	if isUniqueViolation(err) {
		return models.Candidate{}, fmt.Errorf("account %s owns a candidate: %w", req.OwnerAccountID, ErrDuplicate)
	}
	if err != nil {
		return models.Candidate{}, storageErr("failed to insert candidate", err)
	}
	return c, nil
}

// Ensure creates the candidate named req.Name, or updates the existing one
// with that name in place.
func (r *Roster) Ensure(ctx context.Context, req models.CreateCandidateRequest) (models.Candidate, bool, error) {
	var existingID string
	err := r.db.QueryRowContext(ctx, `
		SELECT id FROM candidate WHERE name = $1
	`, strings.TrimSpace(req.Name)).Scan(&existingID)
	if errors.Is(err, sql.ErrNoRows) {
		c, err := r.Create(ctx, req)
		return c, true, err
	}
	if err != nil {
		return models.Candidate{}, false, storageErr("failed to query candidate", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE candidate
		SET party = $1, topic = $2, bio = $3, image_url = $4, owner_account_id = $5
		WHERE id = $6
	`, withDefault(req.Party, DefaultParty), withDefault(req.Topic, DefaultTopic), req.Bio,
		optional(req.ImageURL), optional(req.OwnerAccountID), existingID)
	if isUniqueViolation(err) {
		return models.Candidate{}, false, fmt.Errorf("account %s owns a candidate: %w", req.OwnerAccountID, ErrDuplicate)
	}
	if err != nil {
		return models.Candidate{}, false, storageErr("failed to update candidate", err)
	}

	c, err := r.Get(ctx, existingID)
	return c, false, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(s scanner) (models.Candidate, error) {
	var c models.Candidate
	var image, owner sql.NullString
	err := s.Scan(&c.ID, &c.Name, &c.Party, &c.Topic, &c.Bio, &image, &owner, &c.CreatedAt)
	if err != nil {
		return models.Candidate{}, err
	}
	if image.Valid {
		c.ImageURL = &image.String
	}
	if owner.Valid {
		c.OwnerAccountID = &owner.String
	}
	return c, nil
}

func withDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
