package cache

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"

	"monopoly-engine/app/models"
)

// Store keeps GameState snapshots in Redis, one JSON document per game.
type Store struct {
	pool *redis.Pool
}

func NewStore(pool *redis.Pool) *Store {
	return &Store{pool: pool}
}

func stateKey(gameId string) string {
	return fmt.Sprintf("%s.state", gameId)
}

// snapshotDoc is the persisted envelope: the state plus the session's
// mutation counter, so a rehydrated game resumes at the right version.
type snapshotDoc struct {
	Version int               `json:"version"`
	State   *models.GameState `json:"state"`
}

func (s *Store) Save(gameId string, state *models.GameState, version int) error {
	data, err := encodeSnapshot(state, version)
	if err != nil {
		return err
	}
	conn := s.pool.Get()
	defer conn.Close()

	_, err = conn.Do("SET", stateKey(gameId), data)
	return err
}

func (s *Store) Load(gameId string) (*models.GameState, int, error) {
	conn := s.pool.Get()
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", stateKey(gameId)))
	if err != nil {
		return nil, 0, err
	}
	return decodeSnapshot(data)
}

func (s *Store) Delete(gameId string) error {
	conn := s.pool.Get()
	defer conn.Close()

	_, err := conn.Do("DEL", stateKey(gameId))
	return err
}

func encodeSnapshot(state *models.GameState, version int) ([]byte, error) {
	return json.Marshal(snapshotDoc{Version: version, State: state})
}

// decodeSnapshot rejects documents carrying fields the typed state doesn't
// declare, so a stale or foreign snapshot fails loudly instead of
// round-tripping junk.
func decodeSnapshot(data []byte) (*models.GameState, int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var doc snapshotDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, 0, err
	}
	return doc.State, doc.Version, nil
}
