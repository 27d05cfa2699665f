package main

import (
	"fmt"

	"github.com/hagrid67/flatland-2019/internal/snapshot"
	"github.com/spf13/cobra"
)

func newSaveCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Generate a scenario and write it as a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ep, _, err := buildEpisode(cfg)
			if err != nil {
				return err
			}

			// Episode display cells carry classes, not masks; re-read the map.
			m, err := buildRail(cfg)
			if err != nil {
				return err
			}
			rows := make([][]uint16, m.Height())
			for r := range rows {
				rows[r] = make([]uint16, m.Width())
				for c := 0; c < m.Width(); c++ {
					rows[r][c] = uint16(m.GetFullTransitions(r, c))
				}
			}

			snap := &snapshot.Snapshot{Grid: rows}
			for _, a := range ep.Agents() {
				snap.AgentsStatic = append(snap.AgentsStatic, snapshot.Agent{
					Position:  [2]int{a.Position.Row, a.Position.Col},
					Direction: int(a.Direction),
					Target:    [2]int{a.Target.Row, a.Target.Col},
				})
			}
			if cfg.Malfunction.Rate > 0 {
				snap.Malfunction = &snapshot.Process{
					Rate:        cfg.Malfunction.Rate,
					MinDuration: cfg.Malfunction.MinDuration,
					MaxDuration: cfg.Malfunction.MaxDuration,
				}
			}

			if err := snapshot.Save(args[0], snap); err != nil {
				return err
			}
			fmt.Printf("wrote %d agents on a %dx%d grid to %s\n",
				len(snap.AgentsStatic), m.Width(), m.Height(), args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file (defaults built in)")
	return cmd
}
