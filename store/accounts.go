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

type Accounts struct {
	db *sql.DB
}

func NewAccounts(db *sql.DB) *Accounts {
	return &Accounts{db: db}
}

const accountColumns = `id, username, password_hash, is_admin, phone_number, created_at`

// Get returns the account with id or ErrAccountNotFound.
func (a *Accounts) Get(ctx context.Context, id string) (models.Account, error) {
	return a.queryOne(ctx, `SELECT `+accountColumns+` FROM account WHERE id = $1`, id)
}

// ByUsername returns the account with username or ErrAccountNotFound.
func (a *Accounts) ByUsername(ctx context.Context, username string) (models.Account, error) {
	return a.queryOne(ctx, `SELECT `+accountColumns+` FROM account WHERE username = $1`, username)
}

// Authenticate checks a username/password pair. Unknown usernames and
// wrong passwords both return auth.ErrInvalidCredentials.
func (a *Accounts) Authenticate(ctx context.Context, username, password string) (models.Account, error) {
	acct, err := a.ByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrAccountNotFound) {
		return models.Account{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return models.Account{}, err
	}
	if err := auth.CheckPassword(acct.PasswordHash, password); err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// Create adds an account with a freshly hashed password.
func (a *Accounts) Create(ctx context.Context, username, password string, isAdmin bool, phone string) (models.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Account{}, errors.New("username and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Account{}, err
	}
	id, err := auth.GenerateID(12)
	if err != nil {
		return models.Account{}, storageErr("failed to generate account id", err)
	}

	acct := models.Account{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		PhoneNumber:  optional(phone),
		CreatedAt:    time.Now().UTC(),
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO account (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, acct.ID, acct.Username, acct.PasswordHash, acct.IsAdmin, acct.PhoneNumber, acct.CreatedAt)
	if isUniqueViolation(err) {
		return models.Account{}, fmt.Errorf("username %q: %w", username, ErrDuplicate)
	}
	if err != nil {
		return models.Account{}, storageErr("failed to insert account", err)
	}
	return acct, nil
}

// Ensure creates the account, or resets the password, admin flag and
// phone number of an existing account with the same username.
func (a *Accounts) Ensure(ctx context.Context, username, password string, isAdmin bool, phone string) (models.Account, bool, error) {
	existing, err := a.ByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrAccountNotFound) {
		acct, err := a.Create(ctx, username, password, isAdmin, phone)
		return acct, true, err
	}
	if err != nil {
		return models.Account{}, false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Account{}, false, err
	}
	_, err = a.db.ExecContext(ctx, `
		UPDATE account SET password_hash = $1, is_admin = $2, phone_number = $3 WHERE id = $4
	`, hash, isAdmin, optional(phone), existing.ID)
	if err != nil {
		return models.Account{}, false, storageErr("failed to update account", err)
	}

	existing.PasswordHash = hash
	existing.IsAdmin = isAdmin
	existing.PhoneNumber = optional(phone)
	return existing, false, nil
}

// ResolveRole loads the account and decides its role. Admins stay admins
// even when they also own a candidate.
func (a *Accounts) ResolveRole(ctx context.Context, accountID string) (models.Account, election.Role, error) {
	acct, err := a.Get(ctx, accountID)
	if err != nil {
		return models.Account{}, election.Role{}, err
	}
	if acct.IsAdmin {
		return acct, election.AdminRole(), nil
	}

	candidateID, owns, err := NewRoster(a.db).OwnedBy(ctx, accountID)
	if err != nil {
		return models.Account{}, election.Role{}, err
	}
	if !owns {
		return acct, election.VoterRole(), nil
	}
	return acct, election.CandidateRole(candidateID), nil
}

// Roster lists every non-admin account by username, with the candidate
// each one owns.
func (a *Accounts) Roster(ctx context.Context) ([]models.AccountRosterEntry, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT a.id, a.username, a.phone_number, c.name
		FROM account a
		LEFT JOIN candidate c ON c.owner_account_id = a.id
		WHERE a.is_admin = FALSE
		ORDER BY a.username
	`)
	if err != nil {
		return nil, storageErr("failed to query accounts", err)
	}
	defer rows.Close()

	entries := []models.AccountRosterEntry{}
	for rows.Next() {
		var e models.AccountRosterEntry
		var phone, candidate sql.NullString
		if err := rows.Scan(&e.AccountID, &e.Username, &phone, &candidate); err != nil {
			return nil, storageErr("failed to scan account", err)
		}
		if phone.Valid {
			e.PhoneNumber = &phone.String
		}
		if candidate.Valid {
			e.CandidateName = &candidate.String
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to iterate accounts", err)
	}
	return entries, nil
}

func (a *Accounts) queryOne(ctx context.Context, query string, arg string) (models.Account, error) {
	var acct models.Account
	var phone sql.NullString
	err := a.db.QueryRowContext(ctx, query, arg).Scan(
		&acct.ID, &acct.Username, &acct.PasswordHash, &acct.IsAdmin, &phone, &acct.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, storageErr("failed to query account", err)
	}
	if phone.Valid {
		acct.PhoneNumber = &phone.String
	}
	return acct, nil
}
