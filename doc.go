// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the live-tally server.

live-tally is a real-time voting service: clients connect over WebSocket,
receive the candidate list and current tally, cast at most one vote per
connection, and get live tally updates as votes arrive.

# Starting the Server

	CANDIDATES="Candidate A,Candidate B,Candidate C" go run main.go

Or with flags:

	go run main.go -p 3318 -c "Candidate A,Candidate B,Candidate C"

# Configuration

  - CANDIDATES (-c): comma-separated ordered candidate list (required;
    empty or duplicate entries are fatal)
  - PORT (-p): listen port (default 3318). If taken, up to ten
    successive ports are tried before giving up.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - tally: vote count store (atomic increment, ordered snapshots)
  - session: session registry (one-vote-per-session check-and-set)
  - codec: wire protocol parsing into a tagged message union
  - handlers: per-connection session handler and HTTP tally view
  - broadcast: tally fan-out to all open sessions
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: wire message types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
