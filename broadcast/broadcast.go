// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broadcast

import (
	"log/slog"

	"github.com/danielhkuo/live-tally/codec"
	"github.com/danielhkuo/live-tally/session"
	"github.com/danielhkuo/live-tally/tally"
)

// Broadcaster fans tally updates out to every registered session.
type Broadcaster struct {
	store    *tally.Store
	registry *session.Registry
}

func New(store *tally.Store, registry *session.Registry) *Broadcaster {
	return &Broadcaster{store: store, registry: registry}
}

// Tally takes one snapshot of the current tally and delivers it to every
// active session. Delivery is best-effort: a session that is closed or has
// a full buffer is skipped and logged, and never aborts delivery to the
// rest. Returns the number of successful deliveries.
func (b *Broadcaster) Tally() int {
	entries, total := b.store.Snapshot()
	frame, err := codec.EncodeTallyUpdate(entries, total)
	if err != nil {
		slog.Error("failed to encode tally update", "error", err)
		return 0
	}

	delivered := 0
	for _, s := range b.registry.Active() {
		if s.Deliver(frame) {
			delivered++
		} else {
			slog.Warn("tally update dropped", "session_id", s.ID)
		}
	}
	return delivered
}
