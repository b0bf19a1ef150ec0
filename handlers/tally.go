// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/models"
	"github.com/danielhkuo/live-tally/tally"
)

// TallyHandler serves the read-only HTTP view of the tally for clients
// that don't hold a WebSocket connection.
type TallyHandler struct {
	store *tally.Store
}

func NewTallyHandler(store *tally.Store) *TallyHandler {
	return &TallyHandler{store: store}
}

// Get handles GET /tally
func (h *TallyHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, total := h.store.Snapshot()
	middleware.JSONResponse(w, http.StatusOK, models.TallyUpdateMessage{
		Type:       models.TypeTallyUpdate,
		Tally:      entries,
		TotalVotes: total,
	})
}
