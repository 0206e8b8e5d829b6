package session

import (
	"fmt"
	"io"

	"bikeshare/internal/trips"
	"bikeshare/internal/ui"
)

// DefaultPageSize is how many rows each "yes" shows.
const DefaultPageSize = 5

// Browser pages through the raw rows of a table on request.
type Browser struct {
	Ask      AskFunc
	Out      io.Writer
	PageSize int
}

// Browse keeps asking whether to show more rows until the user answers
// "no". Each "yes" prints the next page and advances the cursor.
func (b *Browser) Browse(t *trips.Table) error {
	size := b.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	cursor := 0
	for {
		answer, err := askUntil(b.Ask,
			"Would you like to view the trip data? Type 'yes' or 'no'.",
			oneOf("yes", "no"))
		if err != nil {
			return err
		}
		if answer == "no" {
			return nil
		}

		page := t.Page(cursor, size)
		if len(page) == 0 {
			fmt.Fprintln(b.Out, ui.Muted("No more trip data."))
			continue
		}

		raw := make([][]string, len(page))
		for i, tr := range page {
			raw[i] = tr.Raw
		}
		fmt.Fprintln(b.Out, ui.RowsTable(t.Header, raw, cursor))
		cursor += size
	}
}
