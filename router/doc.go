// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table.

	GET /ws      → WebSocket voting connection
	GET /tally   → read-only tally snapshot (JSON)
	GET /health  → liveness check
	GET /        → API banner

Handlers are constructed here with their shared dependencies (tally
store, session registry, broadcaster) injected.
*/
package router
