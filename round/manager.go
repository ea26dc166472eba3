// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package round

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/secret-santa/assign"
	"github.com/danielhkuo/secret-santa/cliparse"
	"github.com/danielhkuo/secret-santa/models"
)

var (
	ErrUnknownMember = errors.New("name is not in the member list")
	ErrNotAssigned   = errors.New("no giftee assigned")
)

// Manager owns the current round and its single-row backing store. Every
// operation takes the mutex for its whole load-modify-persist sequence, so
// two concurrent reveals cannot both read stale state and lose a revelation.
type Manager struct {
	mu      sync.Mutex
	db      *sql.DB
	members []string
	rng     *rand.Rand
}

func New(db *sql.DB, cfg cliparse.Config) *Manager {
	return NewWithRand(db, cfg, assign.NewRand())
}

// NewWithRand is New with a caller-supplied random source, so tests can pin
// the generated assignment with a fixed seed.
func NewWithRand(db *sql.DB, cfg cliparse.Config, rng *rand.Rand) *Manager {
	return &Manager{db: db, members: cfg.Members, rng: rng}
}

// load reads the persisted round. Absent row, read failure, and unparseable
// payload all report (nil, false); corruption is handled by the caller
// regenerating, never by surfacing an error.
func (m *Manager) load() (*models.Round, bool) {
	var payload []byte
	err := m.db.QueryRow(`SELECT payload FROM round WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		slog.Warn("failed to read persisted round", "error", err)
		return nil, false
	}

	var rnd models.Round
	if err := json.Unmarshal(payload, &rnd); err != nil {
		slog.Warn("persisted round payload is not valid JSON", "error", err)
		return nil, false
	}

	return &rnd, true
}

// persist overwrites the whole round as one upsert, so readers in this
// process never observe a partial write.
func (m *Manager) persist(rnd *models.Round) error {
	payload, err := json.Marshal(rnd)
	if err != nil {
		return fmt.Errorf("failed to encode round: %w", err)
	}

	_, err = m.db.Exec(`
		INSERT INTO round (id, payload, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to persist round: %w", err)
	}

	return nil
}

func (m *Manager) newRound() (*models.Round, error) {
	assignments, err := assign.Generate(m.rng, m.members)
	if err != nil {
		return nil, fmt.Errorf("failed to generate assignments: %w", err)
	}

	rnd := &models.Round{
		ID:          uuid.NewString(),
		Members:     slices.Clone(m.members),
		Assignments: assignments,
		Revealed:    []string{},
		CreatedAt:   time.Now(),
	}

	if err := m.persist(rnd); err != nil {
		return nil, err
	}

	slog.Info("new round generated", "round_id", rnd.ID, "members", len(rnd.Members))
	return rnd, nil
}

// ensureRound returns the current round, creating one if forceNew is set,
// nothing valid is persisted, or the persisted round fails validation. Any
// corruption is treated the same as absence. Must be called with the mutex
// held.
func (m *Manager) ensureRound(forceNew bool) (*models.Round, error) {
	if forceNew {
		return m.newRound()
	}

	rnd, ok := m.load()
	if !ok {
		return m.newRound()
	}

	// A config edit to the member list invalidates the stored round; keeping
	// it would leave stale or missing names in play.
	if !slices.Equal(rnd.Members, m.members) {
		slog.Warn("persisted round does not match configured members, regenerating", "round_id", rnd.ID)
		return m.newRound()
	}

	if err := assign.Validate(rnd.Assignments, m.members); err != nil {
		slog.Warn("persisted round failed validation, regenerating", "round_id", rnd.ID, "error", err)
		return m.newRound()
	}

	return rnd, nil
}

// State returns the public projection of the current round: the full member
// list, members who have not yet revealed (in original order), and members
// who have. The assignment itself is never included.
func (m *Manager) State() (models.StateResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rnd, err := m.ensureRound(false)
	if err != nil {
		return models.StateResponse{}, err
	}

	return publicView(rnd), nil
}

func publicView(rnd *models.Round) models.StateResponse {
	available := make([]string, 0, len(rnd.Members))
	for _, name := range rnd.Members {
		if !rnd.HasRevealed(name) {
			available = append(available, name)
		}
	}

	revealed := rnd.Revealed
	if revealed == nil {
		revealed = []string{}
	}

	return models.StateResponse{
		Members:          rnd.Members,
		AvailableMembers: available,
		RevealedMembers:  revealed,
	}
}

// Reveal looks up the giftee for the named giver. The first reveal records
// the giver and persists the round; repeats return the same giftee with
// AlreadyRevealed set and no further mutation.
func (m *Manager) Reveal(name string) (models.DrawResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(m.members, name) {
		return models.DrawResponse{}, fmt.Errorf("%w: %q", ErrUnknownMember, name)
	}

	rnd, err := m.ensureRound(false)
	if err != nil {
		return models.DrawResponse{}, err
	}

	// Unreachable for a validated round; guards against a corrupt one
	// slipping through.
	giftee, ok := rnd.Assignments[name]
	if !ok || giftee == "" {
		return models.DrawResponse{}, fmt.Errorf("%w: %q", ErrNotAssigned, name)
	}

	already := rnd.HasRevealed(name)
	if !already {
		rnd.Revealed = append(rnd.Revealed, name)
		if err := m.persist(rnd); err != nil {
			return models.DrawResponse{}, err
		}
		slog.Info("giftee revealed", "round_id", rnd.ID, "name", name)
	}

	return models.DrawResponse{Name: name, Giftee: giftee, AlreadyRevealed: already}, nil
}

// Reset discards the current round, reveals included, and generates and
// persists a fresh one.
func (m *Manager) Reset() (*models.Round, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rnd, err := m.ensureRound(true)
	if err != nil {
		return nil, err
	}

	slog.Info("round reset", "round_id", rnd.ID)
	return rnd, nil
}

// Assignments returns a copy of the full giver→giftee mapping for the debug
// dump endpoint.
func (m *Manager) Assignments() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rnd, err := m.ensureRound(false)
	if err != nil {
		return nil, err
	}

	return maps.Clone(rnd.Assignments), nil
}
