// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package broadcast pushes tally updates to all open sessions.

Tally() reads one consistent snapshot, encodes it once, and attempts a
non-blocking delivery to each session in the registry's active set. A
closed or slow session is skipped, so one broken client never delays or
fails the update for everyone else. The returned delivery count exists
for observability, not correctness.
*/
package broadcast
