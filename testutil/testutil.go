// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/live-tally/broadcast"
	"github.com/danielhkuo/live-tally/router"
	"github.com/danielhkuo/live-tally/session"
	"github.com/danielhkuo/live-tally/tally"
)

// TestCandidates is the candidate list used across the test suite
var TestCandidates = []string{"Candidate A", "Candidate B", "Candidate C"}

// readTimeout bounds every expected read so a missing frame fails the
// test instead of hanging it.
const readTimeout = 2 * time.Second

// StartTestServer spins up the full stack on an ephemeral port and
// returns the server plus the shared state for direct assertions.
func StartTestServer(t *testing.T) (*httptest.Server, *tally.Store, *session.Registry) {
	t.Helper()

	store, err := tally.New(TestCandidates)
	if err != nil {
		t.Fatalf("Failed to create tally store: %v", err)
	}
	registry := session.NewRegistry()
	broadcaster := broadcast.New(store, registry)

	ts := httptest.NewServer(router.NewRouter(store, registry, broadcaster))
	t.Cleanup(ts.Close)

	return ts, store, registry
}

// DialWS opens a WebSocket connection to the test server's /ws endpoint
func DialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http://", "ws://", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// ReadMessage reads the next frame and decodes it into v, failing the
// test if no frame arrives within the read timeout.
func ReadMessage(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read frame: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to decode frame %s: %v", data, err)
	}
}

// SendJSON writes v as a single text frame
func SendJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()

	if err := conn.WriteJSON(v); err != nil {
		t.Fatalf("Failed to send frame: %v", err)
	}
}

// AssertNoMessage fails the test if any frame arrives within the grace
// period. Used to verify that rejected votes trigger no broadcast.
func AssertNoMessage(t *testing.T, conn *websocket.Conn) {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, data, err := conn.ReadMessage()
	if err == nil {
		t.Errorf("Expected no frame, got: %s", data)
	}
}
