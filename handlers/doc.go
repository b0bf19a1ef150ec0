// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the per-connection session handler and the HTTP
tally view.

# WebSocket Session Handler

WSHandler.Serve upgrades GET /ws and drives one session through its
lifecycle:

	connect    → register session, send welcome (candidates + tally)
	vote       → validate candidate, atomic voted check-and-set,
	             increment tally, vote_confirmed to sender, broadcast
	request_tally → snapshot to sender only
	bad frame  → error to sender only, session stays up
	disconnect → unregister, no further sends

Each connection runs two goroutines: a blocking read loop (the only
reader) and a write pump draining the session's outbound channel (the
only writer). No lock is ever held across a network write.

Vote acceptance order matters: the candidate is validated first, then the
voted flag is flipped, then the count is incremented. A session can never
end up marked voted without a matching increment, or the reverse.

# HTTP Tally View

TallyHandler.Get serves GET /tally with the same snapshot shape the
WebSocket broadcast uses.
*/
package handlers
