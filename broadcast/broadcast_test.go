// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broadcast

import (
	"encoding/json"
	"testing"

	"github.com/danielhkuo/live-tally/models"
	"github.com/danielhkuo/live-tally/session"
	"github.com/danielhkuo/live-tally/tally"
)

func newTestBroadcaster(t *testing.T) (*Broadcaster, *tally.Store, *session.Registry) {
	t.Helper()

	store, err := tally.New([]string{"Candidate A", "Candidate B"})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	registry := session.NewRegistry()
	return New(store, registry), store, registry
}

func TestTallyDeliversToAllSessions(t *testing.T) {
	b, store, registry := newTestBroadcaster(t)

	s1 := registry.Register()
	s2 := registry.Register()
	s3 := registry.Register()

	store.Increment("Candidate B")

	if got := b.Tally(); got != 3 {
		t.Errorf("Expected 3 deliveries, got %d", got)
	}

	for _, s := range []*session.Session{s1, s2, s3} {
		select {
		case frame := <-s.Outbound():
			var msg models.TallyUpdateMessage
			if err := json.Unmarshal(frame, &msg); err != nil {
				t.Fatalf("Failed to decode broadcast frame: %v", err)
			}
			if msg.Type != models.TypeTallyUpdate {
				t.Errorf("Expected type %q, got %q", models.TypeTallyUpdate, msg.Type)
			}
			if msg.TotalVotes != 1 {
				t.Errorf("Expected totalVotes 1, got %d", msg.TotalVotes)
			}
			if msg.Tally[1].Votes != 1 {
				t.Errorf("Expected Candidate B at 1 vote, got %+v", msg.Tally)
			}
		default:
			t.Errorf("Session %s received no broadcast", s.ID)
		}
	}
}

func TestTallySkipsClosedSession(t *testing.T) {
	b, _, registry := newTestBroadcaster(t)

	registry.Register()
	closed := registry.Register()
	registry.Unregister(closed.ID)

	// Must not fault on the session closed before the broadcast
	if got := b.Tally(); got != 1 {
		t.Errorf("Expected 1 delivery, got %d", got)
	}
}

func TestTallyNoSessions(t *testing.T) {
	b, _, _ := newTestBroadcaster(t)

	if got := b.Tally(); got != 0 {
		t.Errorf("Expected 0 deliveries, got %d", got)
	}
}

func TestTallyCountsDroppedFrames(t *testing.T) {
	b, _, registry := newTestBroadcaster(t)

	full := registry.Register()
	// Fill the outbound buffer so the broadcast frame is dropped
	for full.Deliver([]byte("fill")) {
	}

	if got := b.Tally(); got != 0 {
		t.Errorf("Expected 0 deliveries to a full session, got %d", got)
	}
}
