// Package session owns the per-game single-writer discipline the engine
// relies on: every mutation of a GameState runs inside that game's critical
// section and bumps its version. Reads get consistent deep-copied snapshots
// without blocking writers of other games.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"monopoly-engine/app/models"
	"monopoly-engine/pkg"
	"monopoly-engine/platform/engine"
)

var (
	ErrGameNotFound = errors.New("game not found")
)

// SnapshotStore persists full GameState snapshots keyed by game id. The
// version travels with the snapshot so a rehydrated game resumes its mutation
// counter instead of restarting it.
type SnapshotStore interface {
	Save(gameId string, state *models.GameState, version int) error
	Load(gameId string) (*models.GameState, int, error)
	Delete(gameId string) error
}

// RecordStore tracks game lifecycle rows in durable storage.
type RecordStore interface {
	Created(gameId string) error
	Finished(gameId, winner, status string, turns int) error
}

type entry struct {
	mu      sync.Mutex
	state   *models.GameState
	version int
}

// Manager keeps the live games of this process. Snapshot and record stores
// are optional; persistence failures are logged, never allowed to corrupt the
// in-memory state.
type Manager struct {
	mu     sync.RWMutex
	games  map[string]*entry
	engine *engine.Engine

	snapshots SnapshotStore
	records   RecordStore
}

// NewManager builds a manager without persistence.
func NewManager(eng *engine.Engine) *Manager {
	return &Manager{games: make(map[string]*entry), engine: eng}
}

// NewManagerWithStores builds a manager with optional snapshot and record
// persistence; either may be nil.
func NewManagerWithStores(eng *engine.Engine, snapshots SnapshotStore, records RecordStore) *Manager {
	m := NewManager(eng)
	m.snapshots = snapshots
	m.records = records
	return m
}

// Create starts a new game for the given seats and returns its id.
func (m *Manager) Create(seats []models.PlayerSeat) (string, error) {
	if len(seats) < 2 {
		return "", fmt.Errorf("%w: a game needs at least 2 players", engine.ErrInvalidInput)
	}
	id := pkg.RandString(8)
	state := m.engine.CreateGame(seats)

	m.mu.Lock()
	m.games[id] = &entry{state: state, version: 1}
	m.mu.Unlock()

	if m.records != nil {
		if err := m.records.Created(id); err != nil {
			logrus.WithError(err).WithField("game", id).Warn("failed to record game creation")
		}
	}
	m.persist(id, state, 1)
	return id, nil
}

// Update runs fn inside the game's critical section. fn must be synchronous
// and mutate the state in place; the version is bumped and the snapshot
// persisted only when fn succeeds.
func (m *Manager) Update(id string, fn func(state *models.GameState) (*models.ActionResult, error)) (*models.ActionResult, error) {
	ent, err := m.get(id)
	if err != nil {
		return nil, err
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()

	res, err := fn(ent.state)
	if err != nil {
		return nil, err
	}
	ent.version++

	m.persist(id, ent.state, ent.version)
	if m.records != nil && ent.state.Finished() {
		if err := m.records.Finished(id, ent.state.Winner, ent.state.Status, ent.state.Turn); err != nil {
			logrus.WithError(err).WithField("game", id).Warn("failed to record game result")
		}
	}
	return res, nil
}

// Snapshot returns a deep copy of the game state, safe to read or serialize
// while other calls keep mutating the original.
func (m *Manager) Snapshot(id string) (*models.GameState, error) {
	ent, err := m.get(id)
	if err != nil {
		return nil, err
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()

	data, err := json.Marshal(ent.state)
	if err != nil {
		return nil, err
	}
	var copied models.GameState
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}
	return &copied, nil
}

// Version returns the game's mutation counter, usable by callers running an
// optimistic read-check-write cycle.
func (m *Manager) Version(id string) (int, error) {
	ent, err := m.get(id)
	if err != nil {
		return 0, err
	}
	ent.mu.Lock()
	defer ent.mu.Unlock()
	return ent.version, nil
}

// Delete drops the game from memory and from the snapshot store.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()

	if m.snapshots != nil {
		if err := m.snapshots.Delete(id); err != nil {
			logrus.WithError(err).WithField("game", id).Warn("failed to delete game snapshot")
		}
	}
}

func (m *Manager) get(id string) (*entry, error) {
	m.mu.RLock()
	ent, ok := m.games[id]
	m.mu.RUnlock()
	if ok {
		return ent, nil
	}

	// Fall back to a persisted snapshot so games survive restarts.
	if m.snapshots != nil {
		state, version, err := m.snapshots.Load(id)
		if err == nil && state != nil {
			m.mu.Lock()
			defer m.mu.Unlock()
			if existing, ok := m.games[id]; ok {
				return existing, nil
			}
			if version < 1 {
				version = 1
			}
			ent = &entry{state: state, version: version}
			m.games[id] = ent
			return ent, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
}

func (m *Manager) persist(id string, state *models.GameState, version int) {
	if m.snapshots == nil {
		return
	}
	if err := m.snapshots.Save(id, state, version); err != nil {
		logrus.WithError(err).WithField("game", id).Warn("failed to persist game snapshot")
	}
}
