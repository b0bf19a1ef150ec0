// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielhkuo/live-tally/models"
	"github.com/danielhkuo/live-tally/testutil"
)

func TestTallyEndpoint(t *testing.T) {
	ts, store, _ := testutil.StartTestServer(t)

	store.Increment("Candidate C")

	resp, err := http.Get(ts.URL + "/tally")
	if err != nil {
		t.Fatalf("GET /tally failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var msg models.TallyUpdateMessage
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if msg.Type != models.TypeTallyUpdate {
		t.Errorf("Expected type %q, got %q", models.TypeTallyUpdate, msg.Type)
	}
	if msg.TotalVotes != 1 {
		t.Errorf("Expected totalVotes 1, got %d", msg.TotalVotes)
	}
	if len(msg.Tally) != len(testutil.TestCandidates) {
		t.Fatalf("Expected %d entries, got %d", len(testutil.TestCandidates), len(msg.Tally))
	}
	if msg.Tally[2].Candidate != "Candidate C" || msg.Tally[2].Votes != 1 {
		t.Errorf("Unexpected tally: %+v", msg.Tally)
	}
}
