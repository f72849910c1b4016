// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "time"

// IsOpen reports whether now is at or before the deadline.
func IsOpen(now, deadline time.Time) bool {
	return !now.After(deadline)
}

// Gate holds the single election deadline.
type Gate struct {
	Deadline time.Time
}

func NewGate(deadline time.Time) Gate {
	return Gate{Deadline: deadline}
}

func (g Gate) IsOpen(now time.Time) bool { return IsOpen(now, g.Deadline) }

func (g Gate) IsClosed(now time.Time) bool { return !g.IsOpen(now) }
