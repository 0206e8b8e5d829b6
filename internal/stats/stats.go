package stats

import (
	"math"

	"bikeshare/internal/trips"
)

// Times holds the most frequent month, weekday and hour of travel.
type Times struct {
	Month   Count[int] // 1-12
	Weekday Count[int] // 0=Monday
	Hour    Count[int] // 0-23
}

// TravelTimes computes the modes of the derived time fields.
func TravelTimes(t *trips.Table) (Times, error) {
	if t.Len() == 0 {
		return Times{}, ErrEmptyTable
	}
	months, days, hours := NewTally[int](), NewTally[int](), NewTally[int]()
	for _, tr := range t.Rows {
		months.Add(tr.Month)
		days.Add(tr.Weekday)
		hours.Add(tr.Hour)
	}

	var out Times
	var err error
	if out.Month, err = months.Mode(); err != nil {
		return Times{}, err
	}
	if out.Weekday, err = days.Mode(); err != nil {
		return Times{}, err
	}
	if out.Hour, err = hours.Mode(); err != nil {
		return Times{}, err
	}
	return out, nil
}

// Route is an ordered (start, end) station pair.
type Route struct {
	Start string
	End   string
}

// Stations holds the most popular start station, end station and route.
type Stations struct {
	Start Count[string]
	End   Count[string]
	Route Count[Route]
}

// PopularStations computes the start, end and route modes independently.
func PopularStations(t *trips.Table) (Stations, error) {
	if t.Len() == 0 {
		return Stations{}, ErrEmptyTable
	}
	starts, ends, routes := NewTally[string](), NewTally[string](), NewTally[Route]()
	for _, tr := range t.Rows {
		starts.Add(tr.StartStation)
		ends.Add(tr.EndStation)
		routes.Add(Route{Start: tr.StartStation, End: tr.EndStation})
	}

	var out Stations
	var err error
	if out.Start, err = starts.Mode(); err != nil {
		return Stations{}, err
	}
	if out.End, err = ends.Mode(); err != nil {
		return Stations{}, err
	}
	if out.Route, err = routes.Mode(); err != nil {
		return Stations{}, err
	}
	return out, nil
}

// Durations holds total and mean trip duration in seconds.
type Durations struct {
	Trips int
	Total float64
	Mean  float64
}

// TotalHours returns the total duration in hours.
func (d Durations) TotalHours() float64 { return d.Total / 3600 }

// TotalDays returns the total duration in days.
func (d Durations) TotalDays() float64 { return d.Total / 86400 }

// MeanMinutes returns the mean duration in minutes.
func (d Durations) MeanMinutes() float64 { return d.Mean / 60 }

// TripDurations sums and averages the duration field.
func TripDurations(t *trips.Table) (Durations, error) {
	if t.Len() == 0 {
		return Durations{}, ErrEmptyTable
	}
	var total float64
	for _, tr := range t.Rows {
		total += tr.Duration
	}
	return Durations{
		Trips: t.Len(),
		Total: total,
		Mean:  total / float64(t.Len()),
	}, nil
}

// BirthYears summarizes the birth year field.
type BirthYears struct {
	Oldest   float64 // earliest year
	Youngest float64 // latest year
	Mean     float64
}

// Users holds the user demographic breakdowns. Genders is nil and
// HasGender false when the dataset has no gender column; BirthYears is nil
// when the dataset has no birth year column or no row has a value.
type Users struct {
	Types      []Count[string]
	HasGender  bool
	Genders    []Count[string]
	BirthYears *BirthYears
}

// Demographics computes user type and gender breakdowns and birth year
// range. Blank cells are skipped.
func Demographics(t *trips.Table) (Users, error) {
	if t.Len() == 0 {
		return Users{}, ErrEmptyTable
	}

	types := NewTally[string]()
	genders := NewTally[string]()
	var years int
	var sum float64
	oldest, youngest := math.Inf(1), math.Inf(-1)
	for _, tr := range t.Rows {
		if tr.UserType != "" {
			types.Add(tr.UserType)
		}
		if t.HasGender && tr.Gender != "" {
			genders.Add(tr.Gender)
		}
		if t.HasBirthYear && tr.HasBirthYear {
			years++
			sum += tr.BirthYear
			oldest = math.Min(oldest, tr.BirthYear)
			youngest = math.Max(youngest, tr.BirthYear)
		}
	}

	out := Users{Types: types.Ranked(), HasGender: t.HasGender}
	if t.HasGender {
		out.Genders = genders.Ranked()
	}
	if years > 0 {
		out.BirthYears = &BirthYears{
			Oldest:   oldest,
			Youngest: youngest,
			Mean:     sum / float64(years),
		}
	}
	return out, nil
}
