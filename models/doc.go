// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire message types for the voting protocol.

Every frame is a single JSON object with a "type" discriminator.

# Client → Server

  - VoteRequest: type "vote", candidate (string)
  - RequestTallyRequest: type "request_tally"

# Server → Client

  - WelcomeMessage: type "welcome", clientId, candidates, tally
  - VoteConfirmedMessage: type "vote_confirmed", candidate
  - TallyUpdateMessage: type "tally_update", tally, totalVotes
  - ErrorMessage: type "error", message

# Domain Types

  - TallyEntry: one candidate's vote count; slices of entries preserve
    the candidate order configured at startup
*/
package models
