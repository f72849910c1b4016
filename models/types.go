package models

import (
	"time"

	"github.com/mohammadtout24/electionV2/election"
)

// Vote outcome constants
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
)

// Request types

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateCandidateRequest struct {
	Name           string `json:"name"`
	Party          string `json:"party"`
	Topic          string `json:"topic"`
	Bio            string `json:"bio"`
	ImageURL       string `json:"image_url"`
	OwnerAccountID string `json:"owner_account_id"`
}

// Response types

type CastVoteResponse struct {
	VoteID        string `json:"vote_id"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

type MyVoteResponse struct {
	VoteID        string    `json:"vote_id"`
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	VotedAt       time.Time `json:"voted_at"`
}

// ElectionResponse is the main page: voting state, the caller's own vote
// and the projection of results their role allows.
type ElectionResponse struct {
	VotingClosed     bool                `json:"voting_closed"`
	Deadline         string              `json:"deadline"`
	DeadlineAt       time.Time           `json:"deadline_at"`
	ClosesIn         string              `json:"closes_in"`
	IsAdmin          bool                `json:"is_admin"`
	IsCandidate      bool                `json:"is_candidate"`
	Username         string              `json:"username,omitempty"`
	HasVoted         bool                `json:"has_voted"`
	VotedCandidateID *string             `json:"voted_candidate_id"`
	VotedForName     *string             `json:"voted_for_name"`
	View             election.Projection `json:"view"`
}

type CandidateListResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type CandidateResultsResponse struct {
	Results    []election.SelfResultRow `json:"results"`
	TotalVotes int                      `json:"total_votes"`
}

type LoginResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Message   string `json:"message"`
}

type AccountRosterResponse struct {
	Accounts []AccountRosterEntry `json:"accounts"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin"`
	PhoneNumber  *string   `json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Candidate struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Party          string    `json:"party"`
	Topic          string    `json:"topic"`
	Bio            string    `json:"bio"`
	ImageURL       *string   `json:"image_url"`
	OwnerAccountID *string   `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// AccountRosterEntry is one row of the candidate-only account list.
type AccountRosterEntry struct {
	AccountID     string  `json:"account_id"`
	Username      string  `json:"username"`
	PhoneNumber   *string `json:"phone_number"`
	CandidateName *string `json:"candidate_name"`
}

type Vote struct {
	ID            string                 `json:"id"`
	Identity      election.VoterIdentity `json:"-"` // Never expose in JSON
	CandidateID   string                 `json:"candidate_id"`
	CandidateName string                 `json:"candidate_name"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
