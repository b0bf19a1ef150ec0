// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally implements the in-memory vote count store.

A Store is created once at startup from the configured candidate list and
lives for the process lifetime. Increment and Snapshot are the only
mutation/read paths; both are guarded by a single RWMutex so a snapshot is
always a consistent point-in-time view and concurrent increments never
lose updates.

The invariant maintained here: every configured candidate has an entry,
no entry exists for anything else, and the total equals the sum of counts.
*/
package tally
