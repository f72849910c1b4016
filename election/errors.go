// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

var (
	ErrMissingSelection  = errors.New("no candidate selected")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrVotingClosed      = errors.New("voting is closed")
	ErrUnauthorized      = errors.New("not permitted for this role")
	ErrStorage           = errors.New("storage failure")
)

// Code returns the stable name of err for API responses.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingSelection):
		return "missing_selection"
	case errors.Is(err, ErrCandidateNotFound):
		return "candidate_not_found"
	case errors.Is(err, ErrVotingClosed):
		return "voting_closed"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	default:
		return "storage_failure"
	}
}
