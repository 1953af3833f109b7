// Courier route planner for grid worlds. It finds shortest delivery routes
// across a warehouse floor plan and visits prioritized drop-off points in
// tier order, either as a one-shot CLI run or as an HTTP planning service.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// version is overridden through ldflags at release build time.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "courier-planner",
		Short:         "Plan prioritized delivery routes on a grid world",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newPlanCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newPlanCmd() *cobra.Command {
	var (
		pngOut     string
		geojsonOut string
		scale      int
	)

	cmd := &cobra.Command{
		Use:   "plan <map-file> <deliveries-file>",
		Short: "Plan delivery routes and print the report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, origin, err := LoadGridFile(args[0])
			if err != nil {
				return err
			}
			deliveries, err := LoadDeliveriesFile(args[1])
			if err != nil {
				return err
			}

			plan := PlanDeliveries(grid, origin, deliveries)
			WriteReport(cmd.OutOrStdout(), plan)

			if pngOut != "" {
				if err := RenderPlanPNG(grid, plan, pngOut, scale); err != nil {
					return err
				}
				log.Printf("🖼️  Plan image saved to %s\n", pngOut)
			}
			if geojsonOut != "" {
				if err := WriteGeoJSONFile(plan, geojsonOut); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pngOut, "png", "", "Write a PNG rendering of the plan to this file")
	cmd.Flags().StringVar(&geojsonOut, "geojson", "", "Write the plan as GeoJSON to this file")
	cmd.Flags().IntVar(&scale, "scale", 16, "Pixels per cell in the PNG rendering")

	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		port           int
		mapPath        string
		deliveriesPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP planning service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v := os.Getenv("PORT"); v != "" && !cmd.Flags().Changed("port") {
				p, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("invalid PORT value %q", v)
				}
				port = p
			}
			return runServe(port, mapPath, deliveriesPath)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Listen port (the PORT env var overrides the default)")
	cmd.Flags().StringVar(&mapPath, "map", "", "Preload a map file at startup")
	cmd.Flags().StringVar(&deliveriesPath, "deliveries", "", "Preload a deliveries file at startup")

	return cmd
}
