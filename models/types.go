// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Message type constants (the "type" field of every frame)
const (
	// Client -> server
	TypeVote         = "vote"
	TypeRequestTally = "request_tally"

	// Server -> client
	TypeWelcome       = "welcome"
	TypeVoteConfirmed = "vote_confirmed"
	TypeTallyUpdate   = "tally_update"
	TypeError         = "error"
)

// TallyEntry is one candidate's vote count. Slices of entries preserve the
// candidate order configured at startup.
type TallyEntry struct {
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
}

// Client -> server frames

type VoteRequest struct {
	Type      string `json:"type"`
	Candidate string `json:"candidate"`
}

type RequestTallyRequest struct {
	Type string `json:"type"`
}

// Server -> client frames

type WelcomeMessage struct {
	Type       string       `json:"type"`
	ClientID   string       `json:"clientId"`
	Candidates []string     `json:"candidates"`
	Tally      []TallyEntry `json:"tally"`
}

type VoteConfirmedMessage struct {
	Type      string `json:"type"`
	Candidate string `json:"candidate"`
}

type TallyUpdateMessage struct {
	Type       string       `json:"type"`
	Tally      []TallyEntry `json:"tally"`
	TotalVotes int          `json:"totalVotes"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
