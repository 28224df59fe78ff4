package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askessler/cadview/internal/app"
	"github.com/askessler/cadview/internal/config"
	"github.com/askessler/cadview/version"
)

var displayUnit string

var rootCmd = &cobra.Command{
	Use:     "cadview <file>",
	Short:   "CAD model viewer with interactive surface measurement",
	Long:    `cadview is a 3D model viewer. Click two points on a model surface to measure the distance between them, the angle between the surfaces, and the gap between parallel faces.`,
	Version: version.Full(),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(config.DefaultPath())
		if displayUnit != "" {
			cfg.DisplayUnit = displayUnit
		}
		return app.Run(args[0], cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&displayUnit, "unit", "", "display unit (mm, cm, m, in)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
