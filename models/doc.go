// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - DrawRequest: name

# Response Types

Types for JSON responses:

  - StateResponse: members, availableMembers, revealedMembers
  - DrawResponse: name, giftee, alreadyRevealed
  - ResetResponse: ok
  - ErrorResponse: error, message

# Domain Types

  - Round: one complete exchange — member list, giver→giftee assignments,
    and the revealed set. The JSON encoding of Round is also the persisted
    payload format, so a round survives process restarts byte-for-byte.

The assignment mapping never appears in StateResponse; it is only exposed
through DrawResponse (one entry at a time, to its own giver) and the debug
dump endpoint.
*/
package models
