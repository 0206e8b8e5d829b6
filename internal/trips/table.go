package trips

import "time"

// Column names a dataset is read by.
const (
	ColStartTime    = "Start Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColDuration     = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// requiredColumns must be present in every dataset.
var requiredColumns = []string{ColStartTime, ColStartStation, ColEndStation, ColDuration, ColUserType}

// Trip is one row of a Table.
type Trip struct {
	StartTime    time.Time
	StartStation string
	EndStation   string
	Duration     float64 // seconds
	UserType     string
	Gender       string
	BirthYear    float64
	HasBirthYear bool // false when the cell is blank or the dataset has no such column

	// Derived from StartTime at load time.
	Month   int // 1-12
	Weekday int // 0=Monday .. 6=Sunday
	Hour    int // 0-23

	// Raw holds the source cells in Header order, for display.
	Raw []string
}

// Table is the filtered set of trips for one session iteration.
type Table struct {
	City         string
	Header       []string
	Rows         []Trip
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Page returns up to size rows starting at offset. It returns nil once
// offset is past the end.
func (t *Table) Page(offset, size int) []Trip {
	if t == nil || offset < 0 || size <= 0 || offset >= len(t.Rows) {
		return nil
	}
	end := offset + size
	if end > len(t.Rows) {
		end = len(t.Rows)
	}
	return t.Rows[offset:end]
}

// weekdayIndex converts Go's Sunday-first weekday to a Monday-first index.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// derive fills the derived fields of a trip from its start time.
func derive(tr *Trip) {
	tr.Month = int(tr.StartTime.Month())
	tr.Weekday = weekdayIndex(tr.StartTime.Weekday())
	tr.Hour = tr.StartTime.Hour()
}
