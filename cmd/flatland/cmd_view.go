//go:build ebiten

package main

import (
	"errors"

	"github.com/hagrid67/flatland-2019/internal/app"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	var (
		configPath string
		scale      int
		tps        int
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch a scenario in an interactive window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ep, _, err := buildEpisode(cfg)
			if err != nil {
				return err
			}

			game := app.New(ep, scale, tps, cfg.Seed)
			ebiten.SetWindowTitle("flatland: " + cfg.Generator)
			ebiten.SetWindowSize(ep.Width()*scale, ep.Height()*scale)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file (defaults built in)")
	cmd.Flags().IntVar(&scale, "scale", 24, "pixels per cell")
	cmd.Flags().IntVar(&tps, "tps", 4, "episode ticks per second")
	return cmd
}
