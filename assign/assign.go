// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assign

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
)

// maxAttempts bounds the rejection-sampling loop in Generate. For n >= 3 the
// acceptance probability per draw converges to 1/e, so this is never reached
// for realistic group sizes.
const maxAttempts = 10000

var (
	ErrTooFewMembers    = errors.New("at least 2 members required")
	ErrRetriesExhausted = errors.New("could not find a valid assignment")
)

// ValidationError reports the first invariant a candidate assignment violates.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid assignment: " + e.Reason
}

// NewRand returns a PCG random source seeded from crypto/rand. Tests pass
// their own fixed-seed source to Generate instead.
func NewRand() *rand.Rand {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read is documented never to fail
		panic(err)
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// Generate produces a random giver→giftee assignment over members in which
// every member gives exactly once, receives exactly once, and nobody is
// assigned to themselves.
func Generate(rng *rand.Rand, members []string) (map[string]string, error) {
	if len(members) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewMembers, len(members))
	}

	// The only fixed-point-free permutation of a 2-set is the swap; a random
	// shuffle would succeed only half the time, so apply it directly.
	if len(members) == 2 {
		return map[string]string{
			members[0]: members[1],
			members[1]: members[0],
		}, nil
	}

	shuffled := make([]string, len(members))
	for attempt := 0; attempt < maxAttempts; attempt++ {
		copy(shuffled, members)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		// Reject any permutation that leaves someone gifting themselves.
		// Sampling uniform permutations and keeping the first fixed-point-free
		// one yields a uniform derangement.
		if hasFixedPoint(members, shuffled) {
			continue
		}

		assignments := make(map[string]string, len(members))
		for i, giver := range members {
			assignments[giver] = shuffled[i]
		}

		// A failure here is a generator bug, not a sampling miss.
		if err := Validate(assignments, members); err != nil {
			return nil, fmt.Errorf("generated assignment failed validation: %w", err)
		}

		return assignments, nil
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrRetriesExhausted, maxAttempts)
}

func hasFixedPoint(original, shuffled []string) bool {
	for i := range original {
		if original[i] == shuffled[i] {
			return true
		}
	}
	return false
}

// Validate certifies that assignments is a derangement of members: every
// member appears exactly once as a giver and exactly once as a giftee, and
// no member is assigned to themselves. Givers are checked in member order so
// the reported reason is deterministic. Called both after generation and
// when loading persisted state, where a failure triggers regeneration.
func Validate(assignments map[string]string, members []string) error {
	if len(assignments) != len(members) {
		return &ValidationError{
			Reason: fmt.Sprintf("expected %d assignments, got %d", len(members), len(assignments)),
		}
	}

	memberSet := make(map[string]bool, len(members))
	for _, name := range members {
		memberSet[name] = true
	}

	seenGiftees := make(map[string]bool, len(members))
	for _, giver := range members {
		giftee, ok := assignments[giver]
		if !ok {
			return &ValidationError{Reason: "no giftee assigned to " + giver}
		}
		if giftee == giver {
			return &ValidationError{Reason: giver + " is assigned to themselves"}
		}
		if !memberSet[giftee] {
			return &ValidationError{Reason: "giftee " + giftee + " is not a member"}
		}
		if seenGiftees[giftee] {
			return &ValidationError{Reason: giftee + " is assigned to more than one giver"}
		}
		seenGiftees[giftee] = true
	}

	return nil
}
