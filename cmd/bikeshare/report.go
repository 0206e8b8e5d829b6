package main

import (
	"fmt"

	"bikeshare/internal/config"
	"bikeshare/internal/report"
	"bikeshare/internal/trips"
	"bikeshare/internal/ui"

	"github.com/spf13/cobra"
)

var (
	reportCity  string
	reportMonth string
	reportDay   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print trip statistics without prompting",
	Long: `Loads one city's dataset, applies the month and day filters and prints
the travel time, station, duration and user statistics.

Examples:
  bikeshare report --city chicago
  bikeshare report --city "new york city" --month march --day friday
`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportCity, "city", "c", "", "City to analyze (chicago, new york city, washington)")
	reportCmd.Flags().StringVarP(&reportMonth, "month", "m", trips.All, "Month filter (january-june or all)")
	reportCmd.Flags().StringVarP(&reportDay, "day", "d", trips.All, "Day of week filter (monday-sunday or all)")
	reportCmd.MarkFlagRequired("city")
}

func runReport(cmd *cobra.Command, args []string) error {
	settings := config.FromViper()
	catalog := trips.NewCatalog(settings.DataDir)

	sel, err := trips.NewSelection(catalog, reportCity, reportMonth, reportDay)
	if err != nil {
		return err
	}

	table, err := trips.Load(cmd.Context(), catalog, sel)
	if err != nil {
		return fmt.Errorf("failed to load %s data: %w", trips.DisplayCity(sel.City), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s trips (month: %s, day: %s)\n",
		ui.Heading(trips.DisplayCity(sel.City)), ui.Count(table.Len()), sel.Month, sel.Day)

	return report.All(cmd.OutOrStdout(), table)
}
