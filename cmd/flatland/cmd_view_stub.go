//go:build !ebiten

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Watch a scenario in an interactive window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("the viewer requires the ebiten build tag: go run -tags ebiten ./cmd/flatland view")
		},
	}
}
