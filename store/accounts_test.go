// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mohammadtout24/electionV2/auth"
	"github.com/mohammadtout24/electionV2/election"
	"github.com/mohammadtout24/electionV2/testutil"
)

func TestAccounts_Authenticate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	accounts := NewAccounts(conn)
	ctx := context.Background()

	id := testutil.CreateTestAccount(t, conn, "mona", "s3cret", false)

	acct, err := accounts.Authenticate(ctx, "mona", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if acct.ID != id {
		t.Errorf("Expected account %s, got %s", id, acct.ID)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "mona", "nope"},
		{"unknown user", "ghost", "s3cret"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accounts.Authenticate(ctx, tt.username, tt.password)
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAccounts_ResolveRole(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	accounts := NewAccounts(conn)
	ctx := context.Background()

	voter := testutil.CreateTestAccount(t, conn, "voter", "pw", false)
	admin := testutil.CreateTestAccount(t, conn, "admin", "pw", true)
	owner := testutil.CreateTestAccount(t, conn, "ali", "pw", false)
	candidateID := testutil.CreateTestCandidate(t, conn, "Ali", owner)
	adminOwner := testutil.CreateTestAccount(t, conn, "boss", "pw", true)
	testutil.CreateTestCandidate(t, conn, "Boss", adminOwner)

	tests := []struct {
		name      string
		accountID string
		want      election.Role
	}{
		{"plain account", voter, election.VoterRole()},
		{"admin", admin, election.AdminRole()},
		{"candidate owner", owner, election.CandidateRole(candidateID)},
		{"admin owning a candidate", adminOwner, election.AdminRole()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, role, err := accounts.ResolveRole(ctx, tt.accountID)
			if err != nil {
				t.Fatalf("ResolveRole() error = %v", err)
			}
			if role != tt.want {
				t.Errorf("ResolveRole() = %+v, want %+v", role, tt.want)
			}
		})
	}

	if _, _, err := accounts.ResolveRole(ctx, "deleted"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("ResolveRole(unknown) error = %v, want ErrAccountNotFound", err)
	}
}

func TestAccounts_Roster(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	accounts := NewAccounts(conn)
	ctx := context.Background()

	testutil.CreateTestAccount(t, conn, "zaid", "pw", false)
	testutil.CreateTestAccount(t, conn, "root", "pw", true)
	owner := testutil.CreateTestAccount(t, conn, "ali", "pw", false)
	testutil.CreateTestCandidate(t, conn, "Ali Hassan", owner)

	entries, err := accounts.Roster(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 non-admin accounts, got %d", len(entries))
	}
	if entries[0].Username != "ali" || entries[1].Username != "zaid" {
		t.Errorf("Expected accounts sorted by username, got %s, %s", entries[0].Username, entries[1].Username)
	}
	if entries[0].CandidateName == nil || *entries[0].CandidateName != "Ali Hassan" {
		t.Errorf("Expected linked candidate name, got %v", entries[0].CandidateName)
	}
	if entries[1].CandidateName != nil {
		t.Errorf("Expected no candidate for zaid, got %v", *entries[1].CandidateName)
	}
}

func TestAccounts_CreateAndEnsure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	accounts := NewAccounts(conn)
	ctx := context.Background()

	acct, err := accounts.Create(ctx, "huda", "first", false, "+966500000000")
	if err != nil {
		t.Fatal(err)
	}
	if acct.PhoneNumber == nil || *acct.PhoneNumber != "+966500000000" {
		t.Errorf("Expected phone number, got %v", acct.PhoneNumber)
	}

	if _, err := accounts.Create(ctx, "huda", "again", false, ""); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicate", err)
	}

	updated, created, err := accounts.Ensure(ctx, "huda", "second", true, "")
	if err != nil {
		t.Fatal(err)
	}
	if created || updated.ID != acct.ID || !updated.IsAdmin {
		t.Errorf("Unexpected Ensure() result %+v created=%v", updated, created)
	}
	if _, err := accounts.Authenticate(ctx, "huda", "second"); err != nil {
		t.Errorf("Expected new password to work: %v", err)
	}
}
