package queries

import (
	"github.com/go-pg/pg/v10"

	"monopoly-engine/app/models"
)

// Repo persists one relational row per game so finished sessions stay
// queryable after their in-memory state is gone. Schema management lives
// outside this repo.
type Repo struct {
	db *pg.DB
}

func NewRepo(db *pg.DB) *Repo {
	return &Repo{db: db}
}

// GameRecord is the lifecycle row for one game.
type GameRecord struct {
	Id     string `pg:",pk"`
	Status string
	Winner string
	Turns  int
}

// Created inserts the row for a newly created game.
func (r *Repo) Created(gameId string) error {
	record := &GameRecord{Id: gameId, Status: models.StatusActive}
	_, err := r.db.Model(record).Insert()
	return err
}

// Finished stores the terminal status, winner (empty on a draw) and final
// turn count.
func (r *Repo) Finished(gameId, winner, status string, turns int) error {
	record := &GameRecord{Id: gameId}
	_, err := r.db.Model(record).WherePK().
		Set("status = ?", status).
		Set("winner = ?", winner).
		Set("turns = ?", turns).
		Update()
	return err
}

// VerifyGame reports whether a row exists for the id.
func VerifyGame(id string, db *pg.DB) bool {
	record := &GameRecord{Id: id}
	err := db.Model(record).WherePK().Select()
	return err == nil
}

// ActiveGames lists games that have not finished.
func ActiveGames(db *pg.DB) ([]GameRecord, error) {
	var records []GameRecord
	err := db.Model(&records).Where("status = ?", models.StatusActive).Select()
	return records, err
}
