package trips

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bikeshare/internal/telemetry"
)

// startTimeLayouts are tried in order when parsing the start timestamp.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"1/2/2006 15:04",
}

// Load reads the dataset for sel.City, derives month, weekday and hour from
// the start time, and keeps the rows matching the month and day filters.
// An empty result is not an error.
func Load(ctx context.Context, catalog Catalog, sel Selection) (*Table, error) {
	path, err := catalog.Path(sel.City)
	if err != nil {
		return nil, err
	}

	src, err := openSource(path)
	if err != nil {
		return nil, malformed(sel.City, path, "%v", err)
	}

	header, records, err := src.Read(ctx)
	if err != nil {
		var nf errNotFound
		switch {
		case errors.As(err, &nf):
			return nil, notFound(sel.City, path, nf.err)
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			return nil, malformed(sel.City, path, "%v", err)
		}
	}

	all, err := buildTable(sel.City, path, header, records)
	if err != nil {
		return nil, err
	}

	filtered := &Table{
		City:         all.City,
		Header:       all.Header,
		HasGender:    all.HasGender,
		HasBirthYear: all.HasBirthYear,
		Rows:         make([]Trip, 0, len(all.Rows)),
	}
	for _, tr := range all.Rows {
		if sel.Matches(tr) {
			filtered.Rows = append(filtered.Rows, tr)
		}
	}

	telemetry.LogDebug("Loaded trip dataset",
		"city", sel.City,
		"path", path,
		"source", src.Kind(),
		"rows", len(all.Rows),
		"filtered_rows", len(filtered.Rows),
		"month", sel.Month,
		"day", sel.Day)
	telemetry.RowsLoaded.WithLabelValues(sel.City).Set(float64(len(filtered.Rows)))

	return filtered, nil
}

// buildTable parses raw records into trips. Every required column must be
// present; optional columns are detected once for the whole dataset.
func buildTable(city, path string, header []string, records [][]string) (*Table, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, malformed(city, path, "missing required columns: %s", strings.Join(missing, ", "))
	}

	genderIdx, hasGender := cols[ColGender]
	birthIdx, hasBirth := cols[ColBirthYear]

	table := &Table{
		City:         city,
		Header:       header,
		HasGender:    hasGender,
		HasBirthYear: hasBirth,
		Rows:         make([]Trip, 0, len(records)),
	}

	for n, rec := range records {
		line := n + 2 // header is line 1
		cell := func(i int) string {
			if i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}

		start, err := parseStartTime(cell(cols[ColStartTime]))
		if err != nil {
			return nil, malformed(city, path, "row %d: %v", line, err)
		}
		duration, err := strconv.ParseFloat(cell(cols[ColDuration]), 64)
		if err != nil {
			return nil, malformed(city, path, "row %d: invalid %s %q", line, ColDuration, cell(cols[ColDuration]))
		}

		tr := Trip{
			StartTime:    start,
			StartStation: cell(cols[ColStartStation]),
			EndStation:   cell(cols[ColEndStation]),
			Duration:     duration,
			UserType:     cell(cols[ColUserType]),
			Raw:          rec,
		}
		if hasGender {
			tr.Gender = cell(genderIdx)
		}
		if hasBirth {
			if raw := cell(birthIdx); raw != "" {
				year, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, malformed(city, path, "row %d: invalid %s %q", line, ColBirthYear, raw)
				}
				tr.BirthYear = year
				tr.HasBirthYear = true
			}
		}
		derive(&tr)
		table.Rows = append(table.Rows, tr)
	}

	return table, nil
}

func parseStartTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty %s", ColStartTime)
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s %q", ColStartTime, raw)
}
