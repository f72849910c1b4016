// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// IdentityKind says which key a vote is recorded under.
type IdentityKind string

const (
	IdentityAccount   IdentityKind = "account"
	IdentityAnonymous IdentityKind = "session"
)

// VoterIdentity is the key a vote is recorded under: an account id for
// logged-in callers, the anonymous session token otherwise.
type VoterIdentity struct {
	Kind IdentityKind
	Key  string
}

// AccountIdentity returns the identity of a logged-in account.
func AccountIdentity(accountID string) VoterIdentity {
	return VoterIdentity{Kind: IdentityAccount, Key: accountID}
}

// SessionIdentity returns the identity of an anonymous browser session.
func SessionIdentity(token string) VoterIdentity {
	return VoterIdentity{Kind: IdentityAnonymous, Key: token}
}

func (v VoterIdentity) Valid() bool {
	return v.Key != "" && (v.Kind == IdentityAccount || v.Kind == IdentityAnonymous)
}

// RoleKind enumerates the roles an actor can hold.
type RoleKind string

const (
	RoleVoter     RoleKind = "voter"
	RoleCandidate RoleKind = "candidate"
	RoleAdmin     RoleKind = "admin"
)

// Role is resolved once per request. CandidateID is set only for
// RoleCandidate and names the candidate record the account owns.
type Role struct {
	Kind        RoleKind
	CandidateID string
}

func VoterRole() Role { return Role{Kind: RoleVoter} }

func AdminRole() Role { return Role{Kind: RoleAdmin} }

func CandidateRole(candidateID string) Role {
	return Role{Kind: RoleCandidate, CandidateID: candidateID}
}

// Actor is the caller of a request: who they vote as, what they may see,
// and which account (if any) they are logged in with.
type Actor struct {
	Identity  VoterIdentity
	Role      Role
	AccountID string
	Username  string
	// SessionToken is kept even for logged-in actors so logout can fall
	// back to an anonymous identity.
	SessionToken string
}

func (a Actor) Authenticated() bool { return a.AccountID != "" }
