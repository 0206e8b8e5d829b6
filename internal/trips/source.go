package trips

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// source reads the header and raw records of one dataset.
type source interface {
	Kind() string
	Read(ctx context.Context) (header []string, records [][]string, err error)
}

// openSource picks a reader by file extension.
func openSource(path string) (source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csvSource{path: path}, nil
	case ".db", ".sqlite", ".sqlite3":
		return sqliteSource{path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

type csvSource struct {
	path string
}

func (s csvSource) Kind() string { return "csv" }

func (s csvSource) Read(ctx context.Context) ([]string, [][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, errNotFound{err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = false

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("empty file, no header row")
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read record: %w", err)
		}
		records = append(records, rec)
	}
	return header, records, nil
}

// sqliteSource reads the "trips" table of a SQLite database. Column names
// match the CSV header names.
type sqliteSource struct {
	path string
}

func (s sqliteSource) Kind() string { return "sqlite" }

func (s sqliteSource) Read(ctx context.Context) ([]string, [][]string, error) {
	// Opening a missing file would create it.
	if _, err := os.Stat(s.path); err != nil {
		return nil, nil, errNotFound{err}
	}

	db, err := sql.Open("sqlite", "file:"+s.path+"?mode=ro")
	if err != nil {
		return nil, nil, errNotFound{fmt.Errorf("failed to open database: %w", err)}
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, nil, errNotFound{fmt.Errorf("failed to ping database: %w", err)}
	}

	rows, err := db.QueryContext(ctx, `SELECT * FROM trips`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var records [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rec := make([]string, len(header))
		for i, c := range cells {
			if c.Valid {
				rec[i] = c.String
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return header, records, nil
}

// errNotFound marks source errors that mean the location itself is unusable.
type errNotFound struct{ err error }

func (e errNotFound) Error() string { return e.err.Error() }
func (e errNotFound) Unwrap() error { return e.err }
