// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package round manages the lifecycle of a Secret Santa round.

A round is the aggregate of {member list, assignments, revealed set}. The
Manager is its only owner: it lazily creates the round on first use,
re-validates it every time it is loaded from storage, and persists it on
every mutation.

# Lifecycle

	Absent → Generated → PartiallyRevealed… → FullyRevealed

The first operation against an empty store generates and persists a round.
Each successful reveal appends one giver to the revealed set and persists.
Reset jumps back to Generated with a brand-new assignment from any state,
discarding all prior reveals.

# Self-healing

Corrupt storage is never surfaced: a missing row, an unparseable payload, an
assignment that fails validation, or a member list that no longer matches
the configuration all cause a transparent regeneration, logged at Warn.
Only caller-input errors (ErrUnknownMember) and generation failures reach
the HTTP boundary.

# Storage

The round is stored whole as one JSON payload in a single fixed row, written
with an upsert. The Manager treats the database as an opaque blob store:
load returns the whole record or "absent", persist overwrites it.

# Concurrency

A single mutex serializes every operation end to end (load, validate or
regenerate, mutate, persist), which is the single-writer guarantee for the
one serving process this service assumes.
*/
package round
