// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package assign generates and validates Secret Santa assignments.

An assignment maps each member (the giver) to exactly one other member (the
giftee). A valid assignment is a derangement of the member set: a permutation
with no fixed point.

# Generation

Generate uses rejection sampling: it draws uniform shuffles of the member
list and accepts the first one with no fixed point relative to the original
order:

	rng := assign.NewRand()
	assignments, err := assign.Generate(rng, members)

Two members are special-cased with a direct swap, since the transposition is
the only derangement of a 2-set. The retry loop carries a hard ceiling of
10,000 attempts; hitting it returns ErrRetriesExhausted.

The random source is injected so tests can seed it:

	rng := rand.New(rand.NewPCG(1, 2))

# Validation

Validate checks all derangement invariants and reports the first violation
as a *ValidationError with a human-readable reason:

  - assignment count matches member count
  - every member has a giftee
  - nobody is assigned to themselves
  - every giftee is a member
  - no giftee appears twice

Generate runs Validate on its own output as a guard against generator bugs;
the round manager runs it again on persisted state as a guard against
corrupted or hand-edited storage.
*/
package assign
