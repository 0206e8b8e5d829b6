package trips

import (
	"fmt"
	"strings"
	"time"
)

// All disables a month or day filter.
const All = "all"

// Months are the month names a month filter accepts, January first.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days are the day names a day filter accepts, Monday first.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Selection is the (city, month, day) triple chosen for one session iteration.
type Selection struct {
	City  string
	Month string
	Day   string
}

// NewSelection validates and normalizes a selection. Empty month or day
// values mean All.
func NewSelection(catalog Catalog, city, month, day string) (Selection, error) {
	sel := Selection{
		City:  NormalizeCity(city),
		Month: normalizeFilter(month),
		Day:   normalizeFilter(day),
	}
	if !catalog.Has(sel.City) {
		return Selection{}, fmt.Errorf("unknown city %q (choose one of: %s)", city, strings.Join(catalog.Cities(), ", "))
	}
	if sel.Month != All {
		if _, ok := MonthIndex(sel.Month); !ok {
			return Selection{}, fmt.Errorf("unknown month %q (choose one of: %s, all)", month, strings.Join(Months, ", "))
		}
	}
	if sel.Day != All {
		if _, ok := DayIndex(sel.Day); !ok {
			return Selection{}, fmt.Errorf("unknown day %q (choose one of: %s, all)", day, strings.Join(Days, ", "))
		}
	}
	return sel, nil
}

func normalizeFilter(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return All
	}
	return s
}

// MonthIndex returns the 1-based index of a recognized month name.
func MonthIndex(name string) (int, bool) {
	for i, m := range Months {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}

// DayIndex returns the 0-based index of a recognized day name (Monday=0).
func DayIndex(name string) (int, bool) {
	for i, d := range Days {
		if d == name {
			return i, true
		}
	}
	return 0, false
}

// MonthName renders a 1-based month number, e.g. 6 -> "June".
func MonthName(month int) string {
	if month >= 1 && month <= len(Months) {
		return titleWord(Months[month-1])
	}
	if month >= 1 && month <= 12 {
		return time.Month(month).String()
	}
	return fmt.Sprintf("month %d", month)
}

// DayName renders a 0-based weekday number (Monday=0), e.g. 0 -> "Monday".
func DayName(day int) string {
	if day >= 0 && day < len(Days) {
		return titleWord(Days[day])
	}
	return fmt.Sprintf("day %d", day)
}

// Matches reports whether a trip passes both filters of the selection.
// The selection is assumed to be valid.
func (s Selection) Matches(t Trip) bool {
	if s.Month != All && s.Month != "" {
		idx, _ := MonthIndex(s.Month)
		if t.Month != idx {
			return false
		}
	}
	if s.Day != All && s.Day != "" {
		idx, _ := DayIndex(s.Day)
		if t.Weekday != idx {
			return false
		}
	}
	return true
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}
