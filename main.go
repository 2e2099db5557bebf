// Command monopoly-engine runs full computer-vs-computer games through the
// rules engine and session layer, narrating every turn. Useful for exercising
// the rules end to end and for smoke-testing deck or board changes. Snapshot
// and record persistence are optional and off by default.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"monopoly-engine/app/models"
	"monopoly-engine/platform/board"
	"monopoly-engine/platform/cache"
	"monopoly-engine/platform/cards"
	"monopoly-engine/platform/database"
	"monopoly-engine/platform/engine"
	"monopoly-engine/platform/logging"
	"monopoly-engine/platform/queries"
	"monopoly-engine/platform/session"
)

var (
	numGames    = flag.Int("games", 1, "number of games to simulate")
	numPlayers  = flag.Int("players", 4, "computer players per game (2-6)")
	seed        = flag.Int64("seed", 0, "random seed, 0 means time-based")
	maxTurns    = flag.Int("max-turns", 500, "turn cap before a game is abandoned")
	deckFile    = flag.String("decks", "", "card deck YAML override")
	useRedis    = flag.Bool("redis", false, "persist snapshots to Redis (REDIS_URL)")
	usePostgres = flag.Bool("postgres", false, "record game rows in Postgres (DB_* env)")
)

var seatColors = []string{"red", "blue", "green", "yellow", "purple", "orange"}

func main() {
	logging.Init()
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	decks := cards.LoadDecks()
	if *deckFile != "" {
		var err error
		decks, err = cards.LoadDecksFile(*deckFile)
		if err != nil {
			logrus.WithError(err).Fatal("failed to load deck config")
		}
	}

	eng := engine.New(board.LoadSpaces(), decks.Drawer(rng), rng)

	var snapshots session.SnapshotStore
	if *useRedis {
		snapshots = cache.NewStore(cache.CreateRedisPool())
	}
	var records session.RecordStore
	if *usePostgres {
		records = queries.NewRepo(database.PostgreSQLConnection())
	}
	mgr := session.NewManagerWithStores(eng, snapshots, records)

	logrus.WithFields(logrus.Fields{
		"games":   *numGames,
		"players": *numPlayers,
		"seed":    s,
	}).Info("starting simulation")

	for i := 0; i < *numGames; i++ {
		simulate(mgr, eng, rng)
	}
}

func simulate(mgr *session.Manager, eng *engine.Engine, rng *rand.Rand) {
	n := *numPlayers
	if n < 2 {
		n = 2
	}
	if n > 6 {
		n = 6
	}
	seats := make([]models.PlayerSeat, 0, n)
	for i := 0; i < n; i++ {
		seats = append(seats, models.PlayerSeat{
			Name:       fmt.Sprintf("Computer %d", i+1),
			Color:      seatColors[i%len(seatColors)],
			IsComputer: true,
		})
	}

	id, err := mgr.Create(seats)
	if err != nil {
		logrus.WithError(err).Error("failed to create game")
		return
	}
	log := logrus.WithField("game", id)

	finished := false
	for turn := 0; turn < *maxTurns && !finished; turn++ {
		_, err := mgr.Update(id, func(state *models.GameState) (*models.ActionResult, error) {
			current := state.Players[state.CurrentPlayer]
			dice1, dice2 := rng.Intn(6)+1, rng.Intn(6)+1

			res, err := eng.MovePlayer(state, current.Id, dice1, dice2)
			if err != nil {
				return nil, err
			}
			narrate(log, res.Messages)

			if state.Finished() {
				finished = true
				return res, nil
			}
			if state.PlayerById(current.Id) == nil {
				return res, nil
			}

			if res.CanBuy != nil {
				if dec, err := eng.AIDecide(state, current.Id, engine.DecideBuy, res.CanBuy.Property); err == nil && dec.Action == "buy" {
					if bought, err := eng.BuyProperty(state, current.Id, dec.Property); err == nil {
						narrate(log, bought.Messages)
					}
				}
			}
			if dec, err := eng.AIDecide(state, current.Id, engine.DecideBuild, ""); err == nil && dec.Action == "build" {
				if built, err := eng.BuildImprovement(state, current.Id, dec.Property); err == nil {
					narrate(log, built.Messages)
				}
			}
			return res, nil
		})
		if err != nil {
			log.WithError(err).Error("turn failed")
			return
		}
	}

	final, err := mgr.Snapshot(id)
	if err != nil {
		log.WithError(err).Error("failed to read final state")
		return
	}
	switch {
	case final.Winner != "":
		if winner := final.PlayerById(final.Winner); winner != nil {
			log.WithFields(logrus.Fields{"winner": winner.Name, "turns": final.Turn}).Info("game finished")
		}
	case final.Status == models.StatusDraw:
		log.WithField("turns", final.Turn).Info("game ended in a draw")
	default:
		log.WithField("turns", final.Turn).Info("turn cap reached, game abandoned")
	}
}

func narrate(log *logrus.Entry, messages []string) {
	for _, msg := range messages {
		log.Info(msg)
	}
}
