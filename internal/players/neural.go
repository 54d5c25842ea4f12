// internal/players/neural.go
package players

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"

	deep "github.com/patrikeh/go-deep"
	"github.com/patrikeh/go-deep/training"

	"github.com/jason-s-yu/farkle/internal/farkle"
)

// NumFeatures is the length of the vector Features produces.
const NumFeatures = 19

// NetworkConfig defines the value network architecture plus any trained
// weights. Configs round-trip through JSON so training runs can be resumed.
type NetworkConfig struct {
	Name         string        `json:"name"`
	HiddenLayers []int         `json:"hidden_layers"`
	LearningRate float64       `json:"learning_rate"`
	Weights      [][][]float64 `json:"weights,omitempty"`
}

// DefaultNetworkConfig returns a small untrained network.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Name:         "default",
		HiddenLayers: []int{32, 16},
		LearningRate: 0.01,
	}
}

// LoadNetworkConfig reads a NetworkConfig from a JSON file written by Save.
func LoadNetworkConfig(path string) (NetworkConfig, error) {
	var config NetworkConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("load network config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse network config %s: %w", path, err)
	}
	return config, nil
}

// Neural scores every candidate action with a feedforward value network and
// picks the best one. With a positive temperature it instead samples from a
// softmax over the values, which training uses for exploration.
type Neural struct {
	network     *deep.Neural
	config      NetworkConfig
	temperature float64
	rng         *rand.Rand
}

// NewNeural builds a Neural decider from config, applying config.Weights
// when present. rng is used only for softmax sampling.
func NewNeural(config NetworkConfig, rng *rand.Rand) *Neural {
	layout := append(append([]int{}, config.HiddenLayers...), 1)
	network := deep.NewNeural(&deep.Config{
		Inputs:     NumFeatures,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.0, 0.1),
		Bias:       true,
	})
	if config.Weights != nil {
		network.ApplyWeights(config.Weights)
	}
	return &Neural{network: network, config: config, rng: rng}
}

// SetTemperature sets the exploration temperature; zero means greedy argmax.
func (n *Neural) SetTemperature(temp float64) { n.temperature = temp }

func (n *Neural) Act(state farkle.State, choices []farkle.Action) (farkle.Action, error) {
	if len(choices) == 0 {
		return farkle.Action{}, ErrNoChoices
	}

	values := make([]float64, len(choices))
	for i, choice := range choices {
		values[i] = n.network.Predict(Features(state, choice))[0]
	}

	if n.temperature > 0 {
		return choices[n.sample(values)], nil
	}

	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return choices[best], nil
}

func (n *Neural) Name() string {
	return fmt.Sprintf("neural (%s)", n.config.Name)
}

// Fit trains the network on collected examples with SGD for the given number
// of iterations.
func (n *Neural) Fit(examples training.Examples, iterations int) {
	examples.Shuffle()
	trainer := training.NewTrainer(training.NewSGD(n.config.LearningRate, 0.5, 0.0, false), 1)
	trainer.Train(n.network, examples, nil, iterations)
}

// Save snapshots the current weights into the config and writes it as JSON.
func (n *Neural) Save(path string) error {
	n.config.Weights = n.network.Dump().Weights
	data, err := json.MarshalIndent(n.config, "", "  ")
	if err != nil {
		return fmt.Errorf("encode network config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save network config: %w", err)
	}
	return nil
}

// softmax sampling over action values, sharpened by the temperature.
func (n *Neural) sample(values []float64) int {
	maxVal := values[0]
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	weights := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		weights[i] = math.Exp((v - maxVal) / n.temperature)
		sum += weights[i]
	}
	target := n.rng.Float64() * sum
	for i, w := range weights {
		target -= w
		if target <= 0 {
			return i
		}
	}
	return len(values) - 1
}

// Features encodes a state/action pair for the value network. Every entry is
// scaled to roughly [0, 1] or [-1, 1].
func Features(state farkle.State, action farkle.Action) []float64 {
	f := make([]float64, 0, NumFeatures)

	counts := state.Counts()
	for face := 1; face <= farkle.NumFaces; face++ {
		f = append(f, float64(counts[face])/farkle.NumDice)
	}
	f = append(f, float64(state.TurnSum())/1000)
	f = append(f, float64(state.EligibleToRoll())/farkle.NumDice)

	me := state.Score(state.CurrentPlayer())
	_, top := state.Leader()
	f = append(f, float64(me)/10000)
	f = append(f, float64(top-me)/10000)

	for face := 1; face <= farkle.NumFaces; face++ {
		f = append(f, float64(action.Consumed[face])/farkle.NumDice)
	}
	f = append(f, float64(action.Points)/3000)
	f = append(f, boolFeature(action.IsRoll()))
	f = append(f, boolFeature(action.IsStop()))

	return f
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
