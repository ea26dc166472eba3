// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"slices"
	"time"
)

// Request types

type DrawRequest struct {
	Name string `json:"name"`
}

// Response types

type StateResponse struct {
	Members          []string `json:"members"`
	AvailableMembers []string `json:"availableMembers"`
	RevealedMembers  []string `json:"revealedMembers"`
}

type DrawResponse struct {
	Name            string `json:"name"`
	Giftee          string `json:"giftee"`
	AlreadyRevealed bool   `json:"alreadyRevealed"`
}

type ResetResponse struct {
	OK bool `json:"ok"`
}

// Domain types

// Round is the aggregate for one complete exchange: the fixed member list,
// the giver→giftee assignment, and the givers who have already revealed.
// A reset replaces the whole round; there is no way to un-reveal a single
// giver. The JSON tags double as the persisted payload format.
type Round struct {
	ID          string            `json:"id"`
	Members     []string          `json:"members"`
	Assignments map[string]string `json:"assignments"`
	Revealed    []string          `json:"revealed"`
	CreatedAt   time.Time         `json:"created_at"`
}

// HasRevealed reports whether the named giver has already seen their giftee
// in this round.
func (r *Round) HasRevealed(name string) bool {
	return slices.Contains(r.Revealed, name)
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
