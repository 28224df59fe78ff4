package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askessler/cadview/pkg/analysis"
	"github.com/askessler/cadview/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print model statistics",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		model, err := stl.Parse(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
			os.Exit(1)
		}

		stats := analysis.AnalyzeModel(model)

		fmt.Printf("Model: %s\n", model.Name)
		fmt.Printf("Triangles:    %d\n", stats.TriangleCount)
		fmt.Printf("Dimensions:   %s\n", analysis.FormatVector(stats.Dimensions))
		fmt.Printf("Bounding box: %s - %s\n",
			analysis.FormatVector(stats.BoundingBox.Min),
			analysis.FormatVector(stats.BoundingBox.Max))
		fmt.Printf("Surface area: %.3f\n", stats.SurfaceArea)
		fmt.Printf("Edge length:  min %.4f / avg %.4f / max %.4f\n",
			stats.MinEdgeLength, stats.AvgEdgeLength, stats.MaxEdgeLength)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
