// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags and
environment variables.

Flags override environment variables; a .env file (loaded via godotenv)
fills in anything the real environment doesn't set.

  - PORT (-p): listen port (default 3318)
  - CANDIDATES (-c): comma-separated ordered candidate list (required)

Duplicate-candidate validation happens in the tally store, which owns the
candidate list invariants.
*/
package cliparse
