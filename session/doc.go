// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session tracks live connections and enforces one vote per session.

The Registry owns all Session lifecycles: Register on connect, Unregister
on disconnect. Identifiers are random UUIDs, unique for the process
lifetime. MarkVoted is the single atomic check-and-set that decides vote
acceptance; the voted flag and the registry's view of it are the same
state, so there is no check-then-act window for a double-vote race.

Outbound delivery goes through a per-session buffered channel drained by
the connection's write pump. Deliver never blocks and never faults on a
closed session, so a slow or disconnecting client cannot stall a
broadcast or another voter.
*/
package session
