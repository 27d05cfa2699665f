package main

import (
	"fmt"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/malfunction"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var (
		rate   float64
		minDur int
		maxDur int
		agents int
		steps  int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Monte-Carlo check of the malfunction process",
		Long: `stats runs the malfunction generator over many agent-steps and
compares the observed failure frequency against the analytic per-step
probability of the Poisson model.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxDur < minDur {
				return fmt.Errorf("max duration %d below min duration %d", maxDur, minDur)
			}

			gen, data := malfunction.FromParams(malfunction.ProcessData{
				Rate:        rate,
				MinDuration: minDur,
				MaxDuration: maxDur,
			})
			rng := core.NewRNG(seed)

			counters := make([]int, agents)
			eligible, failures, brokenSteps := 0, 0, 0
			durations := map[int]int{}
			for s := 0; s < steps; s++ {
				for a := range counters {
					if counters[a] < 1 {
						eligible++
					}
					if d := gen.Generate(counters[a], rng); d > 0 {
						failures++
						durations[d]++
						counters[a] = d
					}
					if counters[a] > 0 {
						brokenSteps++
						counters[a]--
					}
				}
			}

			observed := 0.0
			if eligible > 0 {
				observed = float64(failures) / float64(eligible)
			}
			fmt.Printf("process: rate=%g duration=[%d,%d]\n", data.Rate, data.MinDuration, data.MaxDuration)
			fmt.Printf("analytic per-step probability: %.6f\n", malfunction.Prob(data.Rate))
			fmt.Printf("observed:  %.6f (%d failures over %d eligible agent-steps)\n",
				observed, failures, eligible)
			fmt.Printf("broken agent-steps: %d of %d total\n", brokenSteps, agents*steps)
			fmt.Println("duration histogram:")
			for d := minDur + 1; d <= maxDur+1; d++ {
				fmt.Printf("  %3d steps: %d\n", d, durations[d])
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&rate, "rate", 50, "mean steps between failures of one agent")
	cmd.Flags().IntVar(&minDur, "min-duration", 2, "minimum sampled duration")
	cmd.Flags().IntVar(&maxDur, "max-duration", 6, "maximum sampled duration")
	cmd.Flags().IntVar(&agents, "agents", 20, "number of simulated agents")
	cmd.Flags().IntVar(&steps, "steps", 10000, "ticks to simulate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	return cmd
}
