// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package clock provides an injectable source of the current time.

Every deadline comparison in the service goes through a Clock so that
boundary behavior can be tested without sleeping:

	c := clock.Fake(deadline)
	gate.IsOpen(c.Now())       // true, the deadline instant is inclusive
	c.Advance(time.Second)
	gate.IsOpen(c.Now())       // false

Production wiring uses clock.Real().
*/
package clock
