package main

import (
	"fmt"
	"os"

	"bikeshare/internal/config"
	"bikeshare/internal/trips"
	"bikeshare/internal/ui"

	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the supported cities and their dataset files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := trips.NewCatalog(config.FromViper().DataDir)

		var rows [][]string
		for _, city := range catalog.Cities() {
			path, err := catalog.Path(city)
			if err != nil {
				return err
			}
			status := ui.Success("available")
			if _, err := os.Stat(path); err != nil {
				status = ui.Error("missing")
			}
			rows = append(rows, []string{trips.DisplayCity(city), path, status})
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Table([]string{"City", "Dataset", "Status"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
