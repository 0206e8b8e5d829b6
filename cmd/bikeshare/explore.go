package main

import (
	"bikeshare/internal/config"
	"bikeshare/internal/session"
	"bikeshare/internal/trips"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Wrapper for survey functions to allow mocking in tests
var (
	askOneFunc = survey.AskOne
)

// runExplore runs the interactive session loop until the user stops.
func runExplore(cmd *cobra.Command, args []string) error {
	settings := config.FromViper()

	loop := &session.Loop{
		Ask:      askOneFunc,
		Out:      cmd.OutOrStdout(),
		Catalog:  trips.NewCatalog(settings.DataDir),
		PageSize: settings.PageSize,
	}
	return loop.Run(cmd.Context())
}
