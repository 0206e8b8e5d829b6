// Package report prints the statistics computed by package stats. Each
// reporter prints a banner, its results, how long it took and a separator.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"bikeshare/internal/stats"
	"bikeshare/internal/telemetry"
	"bikeshare/internal/trips"
	"bikeshare/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints one group of statistics for a table.
type Reporter func(w io.Writer, t *trips.Table) error

// now is swapped in tests to make timings deterministic.
var now = time.Now

// All runs the four reporters in order and stops at the first error.
func All(w io.Writer, t *trips.Table) error {
	for _, r := range []Reporter{TimeStats, StationStats, DurationStats, UserStats} {
		if err := r(w, t); err != nil {
			return err
		}
	}
	return nil
}

// run wraps a reporter body with the banner, timing and separator.
func run(w io.Writer, name, banner string, body func() error) error {
	fmt.Fprintf(w, "\n%s\n\n", ui.Banner(banner))
	start := now()

	if err := body(); err != nil {
		telemetry.LogDebug("Report failed", "report", name, "error", err)
		return fmt.Errorf("%s stats: %w", name, err)
	}

	elapsed := now().Sub(start)
	telemetry.ObserveReport(name, elapsed)
	fmt.Fprintf(w, "\n%s\n", ui.Muted(fmt.Sprintf("This took %s seconds.", ui.Quantity(elapsed.Seconds()))))
	fmt.Fprintln(w, ui.Separator())
	return nil
}

// TimeStats prints the most frequent month, day of week and hour of travel.
func TimeStats(w io.Writer, t *trips.Table) error {
	return run(w, "time", "Calculating The Most Frequent Times of Travel...", func() error {
		times, err := stats.TravelTimes(t)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "In this data,")
		fmt.Fprintf(w, "%s\n%s with a count of %s.\n\n",
			ui.Heading("The most common month for travelling is:"),
			ui.Value(trips.MonthName(times.Month.Value)), ui.Count(times.Month.Count))
		fmt.Fprintf(w, "%s\n%s with a count of %s.\n\n",
			ui.Heading("The most common day of week for travelling is:"),
			ui.Value(trips.DayName(times.Weekday.Value)), ui.Count(times.Weekday.Count))
		fmt.Fprintf(w, "%s\n%s hours with a count of %s.\n",
			ui.Heading("The most common hour for travelling is:"),
			ui.Value(fmt.Sprintf("%d:00", times.Hour.Value)), ui.Count(times.Hour.Count))
		return nil
	})
}

// StationStats prints the most popular start station, end station and trip.
func StationStats(w io.Writer, t *trips.Table) error {
	return run(w, "station", "Calculating The Most Popular Stations and Trip...", func() error {
		st, err := stats.PopularStations(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n%s with a count of %s.\n\n",
			ui.Heading("The most popular start station is:"),
			ui.Value(st.Start.Value), ui.Count(st.Start.Count))
		fmt.Fprintf(w, "%s\n%s with a count of %s.\n\n",
			ui.Heading("The most popular end station is:"),
			ui.Value(st.End.Value), ui.Count(st.End.Count))
		fmt.Fprintf(w, "%s\n%s to %s with a count of %s trips.\n",
			ui.Heading("The most popular trip is:"),
			ui.Value(st.Route.Value.Start), ui.Value(st.Route.Value.End), ui.Count(st.Route.Count))
		return nil
	})
}

// DurationStats prints total and mean travel time.
func DurationStats(w io.Writer, t *trips.Table) error {
	return run(w, "duration", "Calculating Trip Duration...", func() error {
		d, err := stats.TripDurations(t)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, ui.Heading("Total Travel Time:"))
		fmt.Fprintf(w, "%s seconds or\n%s hours or\n%s days.\n\n",
			ui.Value(ui.Quantity(d.Total)), ui.Value(ui.Quantity(d.TotalHours())), ui.Value(ui.Quantity(d.TotalDays())))
		fmt.Fprintln(w, ui.Heading("Mean Travel Time:"))
		fmt.Fprintf(w, "%s seconds or\n%s minutes.\n",
			ui.Value(ui.Quantity(d.Mean)), ui.Value(ui.Quantity(d.MeanMinutes())))
		return nil
	})
}

// UserStats prints user type and gender breakdowns and the birth year range.
// Columns a dataset lacks are reported as unavailable.
func UserStats(w io.Writer, t *trips.Table) error {
	return run(w, "user", "Calculating User Stats...", func() error {
		u, err := stats.Demographics(t)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, ui.Heading("Here is the breakdown of users:"))
		printBreakdown(w, u.Types)

		if u.HasGender {
			fmt.Fprintln(w, ui.Heading("Here is the breakdown of gender:"))
			printBreakdown(w, u.Genders)
		} else {
			fmt.Fprintln(w, "No Gender data to share.")
		}

		if u.BirthYears != nil {
			fmt.Fprintf(w, "The oldest passenger was born in: %s.\n", ui.Value(ui.Year(u.BirthYears.Oldest)))
			fmt.Fprintf(w, "The youngest passenger was born in: %s.\n", ui.Value(ui.Year(u.BirthYears.Youngest)))
			fmt.Fprintf(w, "The average passenger was born in: %s.\n", ui.Value(ui.Year(u.BirthYears.Mean)))
		} else {
			fmt.Fprintln(w, "No Birth Year data to share.")
		}
		return nil
	})
}

// printBreakdown aligns the counts on the display width of the labels.
func printBreakdown(w io.Writer, counts []stats.Count[string]) {
	width := 0
	for _, c := range counts {
		width = max(width, lipgloss.Width(c.Value))
	}
	for _, c := range counts {
		pad := strings.Repeat(" ", width-lipgloss.Width(c.Value))
		fmt.Fprintf(w, "  %s%s %s\n", c.Value, pad, ui.Value(ui.Count(c.Count)))
	}
	fmt.Fprintln(w)
}
