// cmd/train/main.go

// Self-play training for the neural decider: the learner plays seeded games
// against a baseline opponent, every chosen action is recorded as a feature
// vector, and the game outcome becomes the regression target.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/patrikeh/go-deep/training"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/farkle/internal/farkle"
	"github.com/jason-s-yu/farkle/internal/players"
	"github.com/jason-s-yu/farkle/internal/sim"
)

func main() {
	episodes := flag.Int("episodes", 5000, "number of self-play games")
	batch := flag.Int("batch", 512, "training examples per network update")
	lr := flag.Float64("lr", 0.01, "SGD learning rate")
	target := flag.Int("target", 2000, "banked score ending a training game")
	seed := flag.Int64("seed", 0, "master seed; 0 seeds from the clock")
	opponent := flag.String("opponent", "greedy", "baseline opponent: random or greedy")
	tempStart := flag.Float64("temp-start", 1.0, "initial exploration temperature")
	tempFinal := flag.Float64("temp-final", 0.1, "final exploration temperature")
	report := flag.Int("report", 100, "episodes between progress reports and saves")
	out := flag.String("out", "weights.json", "output path for the trained weights")
	resume := flag.String("resume", "", "weights JSON to continue training from")
	flag.Parse()

	logger := logrus.New()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	master := rand.New(rand.NewSource(*seed))

	netCfg := players.DefaultNetworkConfig()
	netCfg.LearningRate = *lr
	if *resume != "" {
		loaded, err := players.LoadNetworkConfig(*resume)
		if err != nil {
			logger.Fatalf("resume: %v", err)
		}
		loaded.LearningRate = *lr
		netCfg = loaded
	}
	learner := players.NewNeural(netCfg, rand.New(rand.NewSource(master.Int63())))

	logger.WithFields(logrus.Fields{
		"episodes": *episodes,
		"batch":    *batch,
		"lr":       *lr,
		"opponent": *opponent,
		"seed":     *seed,
	}).Info("starting self-play training")

	var examples training.Examples
	wins, losses := 0, 0
	start := time.Now()

	for episode := 0; episode < *episodes; episode++ {
		// Linear temperature decay across the run.
		progress := float64(episode) / float64(*episodes)
		learner.SetTemperature(*tempStart + progress*(*tempFinal-*tempStart))

		rng := rand.New(rand.NewSource(master.Int63()))
		rec := &recorder{inner: learner}
		baseline, err := buildOpponent(*opponent, rng)
		if err != nil {
			logger.Fatal(err)
		}

		game, err := sim.NewGame([]players.Decider{rec, baseline}, sim.Config{
			Target: *target,
			Rng:    rng,
			Logger: quiet(),
		})
		if err != nil {
			logger.Fatalf("set up game: %v", err)
		}
		result, err := game.Run()
		if err != nil {
			logger.Fatalf("episode %d: %v", episode, err)
		}

		reward := -1.0
		if result.Winner == 0 {
			reward = 1.0
			wins++
		} else {
			losses++
		}
		for _, features := range rec.moves {
			examples = append(examples, training.Example{
				Input:    features,
				Response: []float64{reward},
			})
		}

		if len(examples) >= *batch {
			learner.Fit(examples, len(examples)/(*batch)+1)
			examples = nil
		}

		if (episode+1)%*report == 0 || episode == *episodes-1 {
			played := wins + losses
			logger.WithFields(logrus.Fields{
				"episode":   episode + 1,
				"win_rate":  fmt.Sprintf("%.1f%%", 100*float64(wins)/float64(played)),
				"games_sec": fmt.Sprintf("%.1f", float64(played)/time.Since(start).Seconds()),
			}).Info("progress")
			if err := learner.Save(*out); err != nil {
				logger.Fatalf("save weights: %v", err)
			}
		}
	}

	if err := learner.Save(*out); err != nil {
		logger.Fatalf("save weights: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"out":      *out,
		"win_rate": fmt.Sprintf("%.1f%%", 100*float64(wins)/float64(wins+losses)),
		"elapsed":  time.Since(start).Round(time.Second),
	}).Info("training complete")
}

// recorder wraps the learner and keeps the feature vector of every action it
// chose, so the game outcome can label them after the fact.
type recorder struct {
	inner *players.Neural
	moves [][]float64
}

func (r *recorder) Act(state farkle.State, choices []farkle.Action) (farkle.Action, error) {
	action, err := r.inner.Act(state, choices)
	if err == nil {
		r.moves = append(r.moves, players.Features(state, action))
	}
	return action, err
}

func (r *recorder) Name() string { return r.inner.Name() }

func buildOpponent(kind string, rng *rand.Rand) (players.Decider, error) {
	switch kind {
	case "random":
		return players.NewRandom(rng), nil
	case "greedy":
		return players.NewGreedy(), nil
	default:
		return nil, fmt.Errorf("unknown opponent %q", kind)
	}
}

func quiet() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}
