// Package malfunction decides, per agent per step, whether a transient
// breakdown starts and how long it lasts. Failures arrive as a Poisson
// process; durations are uniform over a configured integer range. The
// remaining-broken-steps counter itself lives with the caller, so generators
// stay stateless and a single instance serves every agent.
package malfunction

import (
	"fmt"
	"math"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/snapshot"
)

// ProcessData records the immutable parameters of the stochastic model in
// force so downstream code can report and reproduce the configuration.
type ProcessData struct {
	// Rate is the mean number of steps between failures of a single agent.
	// Zero or negative disables malfunctions entirely.
	Rate float64
	// MinDuration and MaxDuration bound the uniform draw for how many steps
	// a broken agent stays stopped. The drawn value is incremented by one,
	// so a triggered malfunction never lasts zero steps.
	MinDuration int
	MaxDuration int
}

// Generator produces breakdown decisions. Generate returns the number of
// steps the agent will be broken, or 0 when no new malfunction starts. Only
// agents whose current counter is below 1 are eligible for a new failure.
type Generator interface {
	Generate(currentMalfunction int, rng *core.RNG) int
}

// Prob returns the per-step probability that a single agent breaks, per the
// Poisson arrival model with the given rate. Non-positive rates yield 0.
func Prob(rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return 1 - math.Exp(-(1 / rate))
}

type process struct {
	data ProcessData
}

func (p process) Generate(currentMalfunction int, rng *core.RNG) int {
	if currentMalfunction >= 1 {
		return 0
	}
	if rng.Float64() < Prob(p.data.Rate) {
		span := p.data.MaxDuration - p.data.MinDuration + 1
		return p.data.MinDuration + rng.IntN(span) + 1
	}
	return 0
}

// FromParams builds a generator from explicit process parameters.
func FromParams(data ProcessData) (Generator, ProcessData) {
	return process{data: data}, data
}

// FromFile builds a generator from the malfunction parameters stored in a
// saved scenario. A snapshot without a malfunction record yields the
// disabled process.
func FromFile(path string) (Generator, ProcessData, error) {
	snap, err := snapshot.Load(path)
	if err != nil {
		return nil, ProcessData{}, fmt.Errorf("malfunction: %w", err)
	}
	data := ProcessData{}
	if snap.Malfunction != nil {
		data = ProcessData{
			Rate:        snap.Malfunction.Rate,
			MinDuration: snap.Malfunction.MinDuration,
			MaxDuration: snap.Malfunction.MaxDuration,
		}
	}
	return process{data: data}, data, nil
}

type disabled struct{}

func (disabled) Generate(int, *core.RNG) int { return 0 }

// None returns the degenerate always-disabled generator. Unlike a zero-rate
// process it never draws from the random source.
func None() (Generator, ProcessData) {
	return disabled{}, ProcessData{}
}
