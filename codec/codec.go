// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/live-tally/models"
)

var (
	ErrMalformedMessage   = errors.New("malformed message")
	ErrUnknownMessageType = errors.New("unknown message type")
)

// Inbound is the decoded form of a client frame. Exactly one of the
// concrete types below implements it; handlers switch exhaustively.
type Inbound interface {
	inbound()
}

// VoteMessage is a request to cast a vote for a candidate.
type VoteMessage struct {
	Candidate string
}

// RequestTallyMessage asks for the current tally snapshot.
type RequestTallyMessage struct{}

func (VoteMessage) inbound()         {}
func (RequestTallyMessage) inbound() {}

// Decode parses a single text frame into an Inbound message.
// Failures are reported as ErrMalformedMessage or ErrUnknownMessageType
// (wrapped with detail); Decode never panics on bad input.
func Decode(data []byte) (Inbound, error) {
	var env struct {
		Type      string          `json:"type"`
		Candidate json.RawMessage `json:"candidate"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformedMessage)
	}

	switch env.Type {
	case models.TypeVote:
		if len(env.Candidate) == 0 {
			return nil, fmt.Errorf("%w: vote requires a candidate", ErrMalformedMessage)
		}
		var candidate string
		if err := json.Unmarshal(env.Candidate, &candidate); err != nil {
			return nil, fmt.Errorf("%w: candidate must be a string", ErrMalformedMessage)
		}
		return VoteMessage{Candidate: candidate}, nil

	case models.TypeRequestTally:
		return RequestTallyMessage{}, nil

	case "":
		return nil, fmt.Errorf("%w: missing type field", ErrMalformedMessage)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, env.Type)
	}
}

// Encode helpers for the server -> client frames. Marshaling these types
// cannot fail in practice, but errors are surfaced so callers can log them.

func EncodeWelcome(clientID string, candidates []string, tally []models.TallyEntry) ([]byte, error) {
	return json.Marshal(models.WelcomeMessage{
		Type:       models.TypeWelcome,
		ClientID:   clientID,
		Candidates: candidates,
		Tally:      tally,
	})
}

func EncodeVoteConfirmed(candidate string) ([]byte, error) {
	return json.Marshal(models.VoteConfirmedMessage{
		Type:      models.TypeVoteConfirmed,
		Candidate: candidate,
	})
}

func EncodeTallyUpdate(tally []models.TallyEntry, totalVotes int) ([]byte, error) {
	return json.Marshal(models.TallyUpdateMessage{
		Type:       models.TypeTallyUpdate,
		Tally:      tally,
		TotalVotes: totalVotes,
	})
}

func EncodeError(message string) ([]byte, error) {
	return json.Marshal(models.ErrorMessage{
		Type:    models.TypeError,
		Message: message,
	})
}
