// cmd/farkle/main.go
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/farkle/internal/config"
	"github.com/jason-s-yu/farkle/internal/players"
	"github.com/jason-s-yu/farkle/internal/sim"
)

func main() {
	cfg := config.Load()

	playerCount := flag.Int("players", cfg.Players, "number of seats at the table")
	target := flag.Int("target", cfg.Target, "banked score that wins the game")
	seed := flag.Int64("seed", cfg.Seed, "dice seed; 0 seeds from the clock")
	humans := flag.Int("humans", 1, "number of interactive console seats")
	opponent := flag.String("opponent", "greedy", "bot type for the remaining seats: random, greedy or neural")
	weights := flag.String("weights", "", "weights JSON for neural opponents")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	deciders := make([]players.Decider, 0, *playerCount)
	for i := 0; i < *playerCount; i++ {
		if i < *humans {
			deciders = append(deciders, players.NewConsole(os.Stdin, os.Stdout))
			continue
		}
		bot, err := buildBot(*opponent, *weights, rng)
		if err != nil {
			logger.Fatalf("seat %d: %v", i, err)
		}
		deciders = append(deciders, bot)
	}

	game, err := sim.NewGame(deciders, sim.Config{
		Target:  *target,
		Rng:     rng,
		Logger:  logger,
		OnEvent: printEvent,
	})
	if err != nil {
		logger.Fatalf("set up game: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"game":    game.ID,
		"players": *playerCount,
		"target":  *target,
		"seed":    *seed,
	}).Info("starting game")

	result, err := game.Run()
	if err != nil {
		logger.Fatalf("game aborted: %v", err)
	}
	fmt.Printf("\nfinal scores: %v\n", result.Scores)
	fmt.Printf("player %d wins after %d turns\n", result.Winner, result.Rounds)
}

func buildBot(kind, weights string, rng *rand.Rand) (players.Decider, error) {
	switch kind {
	case "random":
		return players.NewRandom(rng), nil
	case "greedy":
		return players.NewGreedy(), nil
	case "neural":
		netCfg := players.DefaultNetworkConfig()
		if weights != "" {
			loaded, err := players.LoadNetworkConfig(weights)
			if err != nil {
				return nil, err
			}
			netCfg = loaded
		}
		return players.NewNeural(netCfg, rng), nil
	default:
		return nil, fmt.Errorf("unknown opponent type %q", kind)
	}
}

func printEvent(ev sim.Event) {
	switch ev.Type {
	case sim.EventRoll:
		fmt.Printf("player %d rolled %v\n", ev.Player, ev.State.Held())
	case sim.EventPlay:
		fmt.Printf("player %d played %s (turn sum %d)\n", ev.Player, ev.Action, ev.State.TurnSum())
	case sim.EventFarkle:
		fmt.Printf("player %d farkled, turn over\n", ev.Player)
	case sim.EventBank:
		fmt.Printf("player %d banked %d (total %d)\n", ev.Player, ev.Points, ev.State.Score(ev.Player))
	case sim.EventGameEnd:
		fmt.Printf("player %d reaches %d\n", ev.Player, ev.Points)
	}
}
