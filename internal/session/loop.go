package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bikeshare/internal/report"
	"bikeshare/internal/telemetry"
	"bikeshare/internal/trips"
)

// LoadFunc loads the table for a selection.
type LoadFunc func(ctx context.Context, catalog trips.Catalog, sel trips.Selection) (*trips.Table, error)

// Loop drives the explore session: it runs iterations until the user
// declines to restart.
type Loop struct {
	Ask      AskFunc
	Out      io.Writer
	Catalog  trips.Catalog
	PageSize int

	// Load and Report default to trips.Load and report.All.
	Load   LoadFunc
	Report report.Reporter
}

// Run executes session iterations. It returns nil when the user stops or
// interrupts a prompt, and the first load or report error otherwise.
func (l *Loop) Run(ctx context.Context) error {
	load := l.Load
	if load == nil {
		load = trips.Load
	}
	rep := l.Report
	if rep == nil {
		rep = report.All
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		again, err := l.iterate(ctx, load, rep)
		if errors.Is(err, ErrAborted) {
			fmt.Fprintln(l.Out)
			telemetry.LogInfo("Session aborted by user")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// iterate runs one iteration with fresh state and reports whether the user
// asked to restart.
func (l *Loop) iterate(ctx context.Context, load LoadFunc, rep report.Reporter) (bool, error) {
	telemetry.SessionsTotal.Inc()

	collector := &Collector{Ask: l.Ask, Out: l.Out, Catalog: l.Catalog}
	sel, err := collector.CollectFilters()
	if err != nil {
		return false, err
	}

	table, err := load(ctx, l.Catalog, sel)
	if err != nil {
		return false, fmt.Errorf("failed to load %s data: %w", trips.DisplayCity(sel.City), err)
	}

	if err := rep(l.Out, table); err != nil {
		return false, err
	}

	browser := &Browser{Ask: l.Ask, Out: l.Out, PageSize: l.PageSize}
	if err := browser.Browse(table); err != nil {
		return false, err
	}

	answer, err := askText(l.Ask, "Would you like to restart? Enter yes or no.")
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}
