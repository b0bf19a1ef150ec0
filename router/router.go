// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/live-tally/broadcast"
	"github.com/danielhkuo/live-tally/handlers"
	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/session"
	"github.com/danielhkuo/live-tally/tally"
)

func NewRouter(store *tally.Store, registry *session.Registry, broadcaster *broadcast.Broadcaster) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	wsHandler := handlers.NewWSHandler(store, registry, broadcaster)
	tallyHandler := handlers.NewTallyHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Live voting connection. Not wrapped with WithLogging: the handler
	// blocks for the connection lifetime and logs connect/disconnect itself.
	mux.HandleFunc("GET /ws", wsHandler.Serve)

	// Read-only tally view
	mux.HandleFunc("GET /tally", middleware.WithLogging(tallyHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("live-tally API v1"))
	})

	return mux
}
