// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request start/completion logging with duration
  - CORS: cross-origin headers for browser clients (the WebSocket
    handshake from a dev frontend is cross-origin)
  - JSONResponse: JSON encoding with content-type header
  - GetClientIP: client IP extraction behind proxies
*/
package middleware
