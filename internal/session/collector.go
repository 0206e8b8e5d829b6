package session

import (
	"fmt"
	"io"
	"strings"

	"bikeshare/internal/telemetry"
	"bikeshare/internal/trips"
	"bikeshare/internal/ui"
)

// Filter modes offered after the city prompt.
const (
	modeMonth = "month"
	modeDay   = "day"
	modeBoth  = "both"
	modeNone  = "none"
)

// Collector asks the user for a city and optional month and day filters.
type Collector struct {
	Ask     AskFunc
	Out     io.Writer
	Catalog trips.Catalog
}

// CollectFilters prompts until it has a valid city and a valid combination
// of month and day filters. Invalid answers only cause the question to be
// asked again.
func (c *Collector) CollectFilters() (trips.Selection, error) {
	fmt.Fprintln(c.Out, ui.Heading("Hello! Let's explore some US bikeshare data!"))

	cities := make([]string, 0, len(c.Catalog.Cities()))
	for _, city := range c.Catalog.Cities() {
		cities = append(cities, trips.DisplayCity(city))
	}
	city, err := askUntil(c.Ask,
		fmt.Sprintf("Would you like to see data for %s?", joinChoices(cities)),
		func(s string) bool { return c.Catalog.Has(trips.NormalizeCity(s)) })
	if err != nil {
		return trips.Selection{}, err
	}
	city = trips.NormalizeCity(city)

	mode, err := askUntil(c.Ask,
		"Would you like to filter the data by month, day, both or not at all? Type 'none' for no filter.",
		oneOf(modeMonth, modeDay, modeBoth, modeNone))
	if err != nil {
		return trips.Selection{}, err
	}

	sel := trips.Selection{City: city, Month: trips.All, Day: trips.All}

	if mode == modeMonth || mode == modeBoth {
		sel.Month, err = askUntil(c.Ask,
			"Which month? January, February, March, April, May or June?",
			oneOf(trips.Months...))
		if err != nil {
			return trips.Selection{}, err
		}
	}
	if mode == modeDay || mode == modeBoth {
		sel.Day, err = askUntil(c.Ask,
			"Which day? E.g. Monday, Tuesday, Wednesday, etc.",
			oneOf(trips.Days...))
		if err != nil {
			return trips.Selection{}, err
		}
	}

	telemetry.LogDebug("Collected filters", "city", sel.City, "month", sel.Month, "day", sel.Day)
	fmt.Fprintln(c.Out, ui.Separator())
	return sel, nil
}

// joinChoices renders ["a", "b", "c"] as "a, b or c".
func joinChoices(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
