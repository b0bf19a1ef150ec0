// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package codec parses and serializes the JSON wire protocol.

Decode turns a client text frame into a tagged union:

	msg, err := codec.Decode(frame)
	switch m := msg.(type) {
	case codec.VoteMessage:
	case codec.RequestTallyMessage:
	}

Decode failures are typed: ErrMalformedMessage for frames that are not a
JSON object or have a missing/mistyped field, ErrUnknownMessageType for an
unrecognized "type" value. Both are recoverable; the session handler
replies with an error frame to the sender only.

Encode* helpers build the server → client frames defined in models.
*/
package codec
