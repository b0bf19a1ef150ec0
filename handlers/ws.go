// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/live-tally/broadcast"
	"github.com/danielhkuo/live-tally/codec"
	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/session"
	"github.com/danielhkuo/live-tally/tally"
)

type WSHandler struct {
	store       *tally.Store
	registry    *session.Registry
	broadcaster *broadcast.Broadcaster
	upgrader    websocket.Upgrader
}

func NewWSHandler(store *tally.Store, registry *session.Registry, broadcaster *broadcast.Broadcaster) *WSHandler {
	return &WSHandler{
		store:       store,
		registry:    registry,
		broadcaster: broadcaster,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin policy is handled by the CORS middleware
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles GET /ws: upgrades the connection, registers a session,
// sends the welcome frame, and runs the read loop until disconnect.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error to the client
		slog.Error("websocket upgrade failed", "error", err, "remote", middleware.GetClientIP(r))
		return
	}

	sess := h.registry.Register()
	slog.Info("client connected",
		"session_id", sess.ID,
		"remote", middleware.GetClientIP(r),
		"active", h.registry.Count(),
	)

	go writePump(conn, sess)

	h.sendWelcome(sess)
	h.readLoop(conn, sess)
}

// writePump is the only writer to the connection. It drains the session's
// outbound channel so no other goroutine ever blocks on a slow client.
func writePump(conn *websocket.Conn, sess *session.Session) {
	for frame := range sess.Outbound() {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			slog.Warn("write to client failed", "session_id", sess.ID, "error", err)
			break
		}
	}
	conn.Close()
}

func (h *WSHandler) readLoop(conn *websocket.Conn, sess *session.Session) {
	defer func() {
		h.registry.Unregister(sess.ID)
		conn.Close()
		slog.Info("client disconnected", "session_id", sess.ID, "active", h.registry.Count())
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("read from client failed", "session_id", sess.ID, "error", err)
			}
			return
		}
		h.handleMessage(sess, data)
	}
}

func (h *WSHandler) handleMessage(sess *session.Session, data []byte) {
	msg, err := codec.Decode(data)
	if err != nil {
		slog.Warn("rejected message", "session_id", sess.ID, "error", err)
		h.sendError(sess, err.Error())
		return
	}

	switch m := msg.(type) {
	case codec.VoteMessage:
		h.handleVote(sess, m.Candidate)
	case codec.RequestTallyMessage:
		h.sendTally(sess)
	}
}

func (h *WSHandler) handleVote(sess *session.Session, candidate string) {
	// Validate before touching the voted flag: a rejected vote must not
	// mark the session as having voted.
	if !h.store.Valid(candidate) {
		h.sendError(sess, "Invalid candidate: "+candidate)
		return
	}

	if !h.registry.MarkVoted(sess.ID) {
		h.sendError(sess, "You have already voted!")
		return
	}

	// Candidate validity was checked before the flag flip, so this cannot
	// fail once the session is marked voted.
	if _, _, err := h.store.Increment(candidate); err != nil {
		slog.Error("increment failed for accepted vote", "session_id", sess.ID, "candidate", candidate, "error", err)
		return
	}

	frame, err := codec.EncodeVoteConfirmed(candidate)
	if err != nil {
		slog.Error("failed to encode vote confirmation", "error", err)
	} else {
		sess.Deliver(frame)
	}

	delivered := h.broadcaster.Tally()
	slog.Info("vote accepted",
		"session_id", sess.ID,
		"candidate", candidate,
		"delivered", delivered,
	)
}

func (h *WSHandler) sendWelcome(sess *session.Session) {
	entries, _ := h.store.Snapshot()
	frame, err := codec.EncodeWelcome(sess.ID, h.store.Candidates(), entries)
	if err != nil {
		slog.Error("failed to encode welcome", "error", err)
		return
	}
	sess.Deliver(frame)
}

func (h *WSHandler) sendTally(sess *session.Session) {
	entries, total := h.store.Snapshot()
	frame, err := codec.EncodeTallyUpdate(entries, total)
	if err != nil {
		slog.Error("failed to encode tally update", "error", err)
		return
	}
	sess.Deliver(frame)
}

func (h *WSHandler) sendError(sess *session.Session, message string) {
	frame, err := codec.EncodeError(message)
	if err != nil {
		slog.Error("failed to encode error message", "error", err)
		return
	}
	sess.Deliver(frame)
}
