package main

import (
	"fmt"

	"github.com/hagrid67/flatland-2019/internal/config"
	"github.com/hagrid67/flatland-2019/internal/episode"
	"github.com/hagrid67/flatland-2019/internal/grid"
	"github.com/hagrid67/flatland-2019/internal/malfunction"
	"github.com/hagrid67/flatland-2019/internal/rail"
	"github.com/hagrid67/flatland-2019/internal/schedule"
	"github.com/hagrid67/flatland-2019/internal/snapshot"
)

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildRail produces the scenario's rail map: the grid stored in the
// snapshot when one is configured, otherwise the border loop fixture.
func buildRail(cfg config.Config) (*rail.Map, error) {
	if cfg.SnapshotPath != "" {
		snap, err := snapshot.Load(cfg.SnapshotPath)
		if err != nil {
			return nil, err
		}
		if snap.Grid != nil {
			return rail.FromGrid(snap.Grid)
		}
	}
	return rail.Loop(cfg.Width, cfg.Height), nil
}

// loopHints derives sparse-generator hints from a border loop map: the top
// and bottom rows act as the two station nodes and agents shuttle between
// them.
func loopHints(m *rail.Map, numAgents int) *schedule.Hints {
	stations := map[int][]grid.Position{}
	for c := 0; c < m.Width(); c++ {
		stations[0] = append(stations[0], grid.Position{Row: 0, Col: c})
		stations[1] = append(stations[1], grid.Position{Row: m.Height() - 1, Col: c})
	}
	pairs := make([][2]int, numAgents)
	for i := range pairs {
		pairs[i] = [2]int{i % 2, (i + 1) % 2}
	}
	return &schedule.Hints{
		TrainStations:         stations,
		AgentStartTargetNodes: pairs,
		NumAgents:             numAgents,
	}
}

// buildEpisode assembles the rail map, schedule generator, and malfunction
// generator described by cfg into a runnable episode.
func buildEpisode(cfg config.Config) (*episode.Episode, malfunction.ProcessData, error) {
	m, err := buildRail(cfg)
	if err != nil {
		return nil, malfunction.ProcessData{}, err
	}

	factory, ok := schedule.Generators()[cfg.Generator]
	if !ok {
		return nil, malfunction.ProcessData{}, fmt.Errorf("unknown schedule generator %q", cfg.Generator)
	}
	gen := factory(schedule.Options{SpeedRatioMap: cfg.SpeedRatios, Path: cfg.SnapshotPath})

	var hints *schedule.Hints
	if cfg.Generator == "sparse" {
		hints = loopHints(m, cfg.NumAgents)
	}

	failures, data := malfunction.FromParams(malfunction.ProcessData{
		Rate:        cfg.Malfunction.Rate,
		MinDuration: cfg.Malfunction.MinDuration,
		MaxDuration: cfg.Malfunction.MaxDuration,
	})

	ep, err := episode.New(m, gen, hints, cfg.NumAgents, failures, cfg.Seed)
	if err != nil {
		return nil, data, err
	}
	return ep, data, nil
}
