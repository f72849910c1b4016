// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestPolicy_Roles(t *testing.T) {
	p := NewPolicy(NewGate(time.Now().Add(time.Hour)))

	tests := []struct {
		name          string
		role          Role
		fullResults   bool
		selfResults   bool
		allIdentities bool
		manageRoster  bool
	}{
		{"voter", VoterRole(), false, false, false, false},
		{"admin", AdminRole(), true, false, false, true},
		{"candidate", CandidateRole("c1"), false, true, true, false},
		{"candidate without record", Role{Kind: RoleCandidate}, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.CanViewFullResults(tt.role); got != tt.fullResults {
				t.Errorf("CanViewFullResults = %v, want %v", got, tt.fullResults)
			}
			if got := p.CanViewSelfResults(tt.role); got != tt.selfResults {
				t.Errorf("CanViewSelfResults = %v, want %v", got, tt.selfResults)
			}
			if got := p.CanViewAllIdentities(tt.role); got != tt.allIdentities {
				t.Errorf("CanViewAllIdentities = %v, want %v", got, tt.allIdentities)
			}
			if got := p.CanManageCandidates(tt.role); got != tt.manageRoster {
				t.Errorf("CanManageCandidates = %v, want %v", got, tt.manageRoster)
			}
		})
	}
}

func TestPolicy_CanMutateVote(t *testing.T) {
	deadline := time.Date(2025, 11, 7, 23, 59, 59, 0, time.UTC)
	p := NewPolicy(NewGate(deadline))

	if !p.CanMutateVote(deadline) {
		t.Error("Expected mutation allowed at deadline")
	}
	if p.CanMutateVote(deadline.Add(time.Second)) {
		t.Error("Expected mutation refused after deadline")
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrMissingSelection, "missing_selection"},
		{fmt.Errorf("cast: %w", ErrCandidateNotFound), "candidate_not_found"},
		{ErrVotingClosed, "voting_closed"},
		{ErrUnauthorized, "unauthorized"},
		{errors.Join(ErrStorage, errors.New("disk full")), "storage_failure"},
	}

	for _, tt := range tests {
		if got := Code(tt.err); got != tt.want {
			t.Errorf("Code(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestVoterIdentity(t *testing.T) {
	acct := AccountIdentity("a1")
	if acct.Kind != IdentityAccount || !acct.Valid() || acct.Key != "a1" {
		t.Errorf("unexpected account identity %+v", acct)
	}

	sess := SessionIdentity("tok")
	if sess.Kind != IdentityAnonymous || !sess.Valid() || sess.Key != "tok" {
		t.Errorf("unexpected session identity %+v", sess)
	}

	if (VoterIdentity{Kind: IdentityAccount}).Valid() {
		t.Error("Expected identity with empty key to be invalid")
	}
}
