package trips

import (
	"errors"
	"fmt"
)

var (
	// ErrDatasetNotFound means the dataset location is missing or unreadable.
	ErrDatasetNotFound = errors.New("dataset not found")
	// ErrDatasetMalformed means the dataset lacks required columns or has unparseable rows.
	ErrDatasetMalformed = errors.New("dataset malformed")
)

// DatasetError describes why a city's dataset could not be loaded.
type DatasetError struct {
	City   string
	Path   string
	Reason string
	Err    error
}

func (e *DatasetError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = e.City
	}
	if e.Reason == "" {
		return fmt.Sprintf("%v: %s", e.Err, loc)
	}
	return fmt.Sprintf("%v: %s: %s", e.Err, loc, e.Reason)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

func notFound(city, path string, cause error) error {
	return &DatasetError{City: city, Path: path, Err: ErrDatasetNotFound, Reason: cause.Error()}
}

func malformed(city, path, format string, args ...any) error {
	return &DatasetError{City: city, Path: path, Err: ErrDatasetMalformed, Reason: fmt.Sprintf(format, args...)}
}
