// internal/sim/game.go
package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/farkle/internal/farkle"
	"github.com/jason-s-yu/farkle/internal/players"
)

// DefaultTarget is the banked score that ends a game unless overridden.
const DefaultTarget = 10000

// Config tunes a Game. Zero values fall back to sensible defaults.
type Config struct {
	Target  int            // winning banked score, DefaultTarget if 0
	Rng     *rand.Rand     // dice source; time-seeded if nil
	Logger  *logrus.Logger // logrus.StandardLogger if nil
	OnEvent func(Event)    // optional synchronous observer
}

// Game sequences turns across players until someone banks the target score.
type Game struct {
	ID         uuid.UUID
	target     int
	deciders   []players.Decider
	controller *Controller
	logger     *logrus.Logger
}

// Result reports a finished game.
type Result struct {
	ID     uuid.UUID
	Winner int
	Scores []int
	Rounds int
}

// NewGame builds a game for the given deciders, one per player seat.
func NewGame(deciders []players.Decider, cfg Config) (*Game, error) {
	if len(deciders) == 0 {
		return nil, errors.New("a game needs at least one player")
	}
	if cfg.Target <= 0 {
		cfg.Target = DefaultTarget
	}
	if cfg.Rng == nil {
		cfg.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	id, _ := uuid.NewRandom()
	return &Game{
		ID:         id,
		target:     cfg.Target,
		deciders:   deciders,
		controller: NewController(cfg.Rng, cfg.OnEvent),
		logger:     cfg.Logger,
	}, nil
}

// Run plays the game to completion and returns the result. The first decider
// error aborts the game.
func (g *Game) Run() (Result, error) {
	state := farkle.NewState(len(g.deciders))

	for {
		player := state.CurrentPlayer()
		decider := g.deciders[player]

		next, turn, err := g.controller.PlayTurn(state, decider)
		if err != nil {
			return Result{}, fmt.Errorf("game %s round %d: %w", g.ID, state.Round(), err)
		}
		state = next

		g.logger.WithFields(logrus.Fields{
			"game":    g.ID,
			"round":   state.Round(),
			"player":  player,
			"decider": decider.Name(),
			"banked":  turn.Banked,
			"farkled": turn.Farkled,
			"rolls":   turn.Rolls,
			"score":   state.Score(player),
		}).Debug("turn complete")

		if winner, score := state.Leader(); score >= g.target {
			g.controller.emit(Event{Type: EventGameEnd, Player: winner, Points: score, State: state})
			g.logger.WithFields(logrus.Fields{
				"game":   g.ID,
				"winner": winner,
				"score":  score,
				"rounds": state.Round(),
			}).Info("game over")
			return Result{
				ID:     g.ID,
				Winner: winner,
				Scores: state.Scores(),
				Rounds: state.Round(),
			}, nil
		}
	}
}
