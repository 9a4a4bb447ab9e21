package main

import (
	"fmt"

	"github.com/ogomes/farol/internal/tracker"
	"github.com/spf13/cobra"
)

func newProgressCmd() *cobra.Command {
	var (
		configPath  string
		sector      string
		coordinator string
	)

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show strategic-plan progress",
		Long: `Prints point-weighted completion per sector or coordinator.

Without flags, prints progress for every sector.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgress(cmd, configPath, sector, coordinator)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Farol config file")
	cmd.Flags().StringVarP(&sector, "sector", "s", "", "show progress for one sector")
	cmd.Flags().StringVar(&coordinator, "coordinator", "", "show progress for one coordinator")
	return cmd
}

func runProgress(cmd *cobra.Command, configPath, sector, coordinator string) error {
	out := cmd.OutOrStdout()

	if sector != "" && coordinator != "" {
		return fmt.Errorf("--sector and --coordinator are mutually exclusive")
	}

	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	switch {
	case sector != "":
		printSummary(cmd, sector, tracker.SectorProgress(gormDB, sector))
	case coordinator != "":
		printSummary(cmd, coordinator, tracker.CoordinatorProgress(gormDB, coordinator))
	default:
		sectors := tracker.Sectors(gormDB)
		if len(sectors) == 0 {
			fmt.Fprintln(out, "No requirements loaded. Run \"farol db seed\" first.")
			return nil
		}
		for _, s := range sectors {
			printSummary(cmd, s, tracker.SectorProgress(gormDB, s))
		}
	}
	return nil
}

func printSummary(cmd *cobra.Command, label string, s tracker.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-40s %3d/%3d pontos (%d%%)\n",
		label, s.CompletedPoints, s.TotalPoints, s.Percentage)
}
