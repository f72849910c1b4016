// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"math"
	"sort"
)

// CandidateCount is one candidate with the number of votes referencing it,
// as read from the ledger.
type CandidateCount struct {
	CandidateID    string
	Name           string
	Party          string
	Topic          string
	ImageURL       string
	OwnerAccountID string
	Votes          int
}

type TallyEntry struct {
	CandidateCount
	Percentage float64
}

// Tally is derived on every read and never stored.
type Tally struct {
	Entries []TallyEntry
	Total   int
}

// Percentage is count/total*100 rounded to one decimal. A zero total is
// treated as a denominator of 1.
func Percentage(count, total int) float64 {
	denom := total
	if denom < 1 {
		denom = 1
	}
	return math.Round(float64(count)*1000/float64(denom)) / 10
}

// Aggregate totals the counts and computes each candidate's share.
func Aggregate(counts []CandidateCount) Tally {
	total := 0
	for _, c := range counts {
		total += c.Votes
	}

	entries := make([]TallyEntry, 0, len(counts))
	for _, c := range counts {
		entries = append(entries, TallyEntry{
			CandidateCount: c,
			Percentage:     Percentage(c.Votes, total),
		})
	}
	return Tally{Entries: entries, Total: total}
}

// ResultRow is the admin view of one candidate.
type ResultRow struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Party       string  `json:"party"`
	ImageURL    *string `json:"image_url"`
	VoteCount   int     `json:"vote_count"`
	Percentage  float64 `json:"percentage"`
}

// SelfResultRow is the candidate view of one candidate. Identifying fields
// are nil on every row except the caller's own.
type SelfResultRow struct {
	CandidateID *string `json:"candidate_id"`
	IsSelf      bool    `json:"is_self"`
	Name        *string `json:"name"`
	ImageURL    *string `json:"image_url"`
	VoteCount   int     `json:"vote_count"`
	Percentage  float64 `json:"percentage"`
}

// BallotEntry is what anyone may see of a candidate in order to vote.
type BallotEntry struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Party       string  `json:"party"`
	Topic       string  `json:"topic"`
	ImageURL    *string `json:"image_url"`
}

// Projection is the role-dependent slice of the tally that may be
// serialized to a caller.
type Projection struct {
	Role        RoleKind        `json:"role"`
	TotalVotes  *int            `json:"total_votes,omitempty"`
	MaxVotes    *int            `json:"max_votes,omitempty"`
	Results     []ResultRow     `json:"results,omitempty"`
	SelfResults []SelfResultRow `json:"self_results,omitempty"`
	Ballot      []BallotEntry   `json:"ballot,omitempty"`
}

// Project builds the view of t that role is allowed to see.
func Project(t Tally, role Role) Projection {
	switch role.Kind {
	case RoleAdmin:
		return projectAdmin(t)
	case RoleCandidate:
		return projectCandidate(t, role.CandidateID)
	default:
		return Projection{Role: RoleVoter, Ballot: BuildBallot(t)}
	}
}

func projectAdmin(t Tally) Projection {
	entries := append([]TallyEntry(nil), t.Entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Votes != entries[j].Votes {
			return entries[i].Votes > entries[j].Votes
		}
		return entries[i].Name < entries[j].Name
	})

	rows := make([]ResultRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ResultRow{
			CandidateID: e.CandidateID,
			Name:        e.Name,
			Party:       e.Party,
			ImageURL:    optional(e.ImageURL),
			VoteCount:   e.Votes,
			Percentage:  e.Percentage,
		})
	}

	maxVotes := 1
	if len(entries) > 0 && entries[0].Votes > 0 {
		maxVotes = entries[0].Votes
	}
	total := t.Total

	return Projection{
		Role:       RoleAdmin,
		TotalVotes: &total,
		MaxVotes:   &maxVotes,
		Results:    rows,
	}
}

// projectCandidate orders rows by count then id, never by name, so the
// order itself does not reveal hidden names. No ballot is attached: it
// would carry every peer's name and image.
func projectCandidate(t Tally, selfID string) Projection {
	entries := append([]TallyEntry(nil), t.Entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Votes != entries[j].Votes {
			return entries[i].Votes > entries[j].Votes
		}
		return entries[i].CandidateID < entries[j].CandidateID
	})

	rows := make([]SelfResultRow, 0, len(entries))
	for _, e := range entries {
		row := SelfResultRow{
			VoteCount:  e.Votes,
			Percentage: e.Percentage,
		}
		if selfID != "" && e.CandidateID == selfID {
			id, name := e.CandidateID, e.Name
			row.IsSelf = true
			row.CandidateID = &id
			row.Name = &name
			row.ImageURL = optional(e.ImageURL)
		}
		rows = append(rows, row)
	}
	total := t.Total

	return Projection{
		Role:        RoleCandidate,
		TotalVotes:  &total,
		SelfResults: rows,
	}
}

// BuildBallot lists every candidate by name, without counts.
func BuildBallot(t Tally) []BallotEntry {
	entries := append([]TallyEntry(nil), t.Entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].CandidateID < entries[j].CandidateID
	})

	ballot := make([]BallotEntry, 0, len(entries))
	for _, e := range entries {
		ballot = append(ballot, BallotEntry{
			CandidateID: e.CandidateID,
			Name:        e.Name,
			Party:       e.Party,
			Topic:       e.Topic,
			ImageURL:    optional(e.ImageURL),
		})
	}
	return ballot
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
