// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "time"

// Policy decides what a role may see and whether votes may change.
type Policy struct {
	Gate Gate
}

func NewPolicy(gate Gate) Policy {
	return Policy{Gate: gate}
}

func (Policy) CanViewFullResults(role Role) bool {
	return role.Kind == RoleAdmin
}

func (Policy) CanViewSelfResults(role Role) bool {
	return role.Kind == RoleCandidate && role.CandidateID != ""
}

func (p Policy) CanMutateVote(now time.Time) bool {
	return p.Gate.IsOpen(now)
}

// CanViewAllIdentities grants every candidate the full account roster,
// phone numbers included. This is broader than a candidate needs.
func (Policy) CanViewAllIdentities(role Role) bool {
	return role.Kind == RoleCandidate
}

func (Policy) CanManageCandidates(role Role) bool {
	return role.Kind == RoleAdmin
}
