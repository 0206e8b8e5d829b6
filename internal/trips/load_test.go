package trips

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullHeader = ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year"

// writeDataset writes a CSV dataset for city into dir and returns its path.
func writeDataset(t *testing.T, dir, file string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

// spreadStartTimes returns start times every five days from Monday 2017-01-02
// through June, so every month and every weekday is represented.
func spreadStartTimes() []time.Time {
	var out []time.Time
	for ts := time.Date(2017, 1, 2, 7, 30, 0, 0, time.UTC); ts.Month() <= time.June; ts = ts.Add(5*24*time.Hour + time.Hour) {
		out = append(out, ts)
	}
	return out
}

func writeSpreadDataset(t *testing.T, dir string) []time.Time {
	t.Helper()
	times := spreadStartTimes()
	lines := []string{fullHeader}
	for i, ts := range times {
		lines = append(lines, fmt.Sprintf("%d,%s,%s,%d,Station %d,Station %d,Subscriber,Male,1980.0",
			i, ts.Format("2006-01-02 15:04:05"), ts.Add(10*time.Minute).Format("2006-01-02 15:04:05"), 600, i%3, i%4))
	}
	writeDataset(t, dir, "chicago.csv", lines...)
	return times
}

func TestLoad_AllReturnsEveryRowWithDerivedFields(t *testing.T) {
	dir := t.TempDir()
	times := writeSpreadDataset(t, dir)

	table, err := Load(context.Background(), NewCatalog(dir), Selection{City: "chicago", Month: All, Day: All})
	require.NoError(t, err)
	require.Equal(t, len(times), table.Len())

	for i, tr := range table.Rows {
		assert.True(t, tr.StartTime.Equal(times[i]), "row %d start time", i)
		assert.Equal(t, int(times[i].Month()), tr.Month)
		assert.Equal(t, (int(times[i].Weekday())+6)%7, tr.Weekday)
		assert.Equal(t, times[i].Hour(), tr.Hour)
	}
	assert.True(t, table.HasGender)
	assert.True(t, table.HasBirthYear)
	assert.Equal(t, "chicago", table.City)
}

func TestLoad_MonthFilter(t *testing.T) {
	dir := t.TempDir()
	times := writeSpreadDataset(t, dir)

	for i, month := range Months {
		t.Run(month, func(t *testing.T) {
			want := 0
			for _, ts := range times {
				if int(ts.Month()) == i+1 {
					want++
				}
			}
			require.NotZero(t, want)

			table, err := Load(context.Background(), NewCatalog(dir), Selection{City: "chicago", Month: month, Day: All})
			require.NoError(t, err)
			assert.Equal(t, want, table.Len())
			for _, tr := range table.Rows {
				assert.Equal(t, i+1, tr.Month)
			}
		})
	}
}

func TestLoad_DayFilter(t *testing.T) {
	dir := t.TempDir()
	times := writeSpreadDataset(t, dir)

	for i, day := range Days {
		t.Run(day, func(t *testing.T) {
			want := 0
			for _, ts := range times {
				if (int(ts.Weekday())+6)%7 == i {
					want++
				}
			}
			require.NotZero(t, want)

			table, err := Load(context.Background(), NewCatalog(dir), Selection{City: "chicago", Month: All, Day: day})
			require.NoError(t, err)
			assert.Equal(t, want, table.Len())
			for _, tr := range table.Rows {
				assert.Equal(t, i, tr.Weekday)
			}
		})
	}
}

func TestLoad_FiltersAreConjunctive(t *testing.T) {
	dir := t.TempDir()
	writeSpreadDataset(t, dir)

	table, err := Load(context.Background(), NewCatalog(dir), Selection{City: "chicago", Month: "march", Day: "friday"})
	require.NoError(t, err)
	for _, tr := range table.Rows {
		assert.Equal(t, 3, tr.Month)
		assert.Equal(t, 4, tr.Weekday)
	}
}

func TestLoad_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeSpreadDataset(t, dir)
	sel := Selection{City: "chicago", Month: "april", Day: All}

	first, err := Load(context.Background(), NewCatalog(dir), sel)
	require.NoError(t, err)
	second, err := Load(context.Background(), NewCatalog(dir), sel)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, Selection{City: "chicago", Month: "april", Day: All}, sel)
}

func TestLoad_EmptyResultIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "new_york_city.csv",
		fullHeader,
		"0,2017-01-02 08:00:00,2017-01-02 08:10:00,600,A,B,Subscriber,Female,1990",
	)

	table, err := Load(context.Background(), NewCatalog(dir), Selection{City: "new york city", Month: "june", Day: All})
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	assert.NotNil(t, table.Rows)
}

func TestLoad_OptionalColumnsAbsent(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "washington.csv",
		",Start Time,End Time,Trip Duration,Start Station,End Station,User Type",
		"0,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber",
		"1,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Customer",
	)

	table, err := Load(context.Background(), NewCatalog(dir), Selection{City: "washington", Month: All, Day: All})
	require.NoError(t, err)
	assert.False(t, table.HasGender)
	assert.False(t, table.HasBirthYear)
	require.Equal(t, 2, table.Len())
	assert.InDelta(t, 489.066, table.Rows[0].Duration, 1e-9)
	assert.False(t, table.Rows[0].HasBirthYear)
}

func TestLoad_BlankOptionalCells(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "chicago.csv",
		fullHeader,
		"0,2017-01-02 08:00:00,2017-01-02 08:10:00,600,A,B,Customer,,",
	)

	table, err := Load(context.Background(), NewCatalog(dir), Selection{City: "chicago", Month: All, Day: All})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "", table.Rows[0].Gender)
	assert.False(t, table.Rows[0].HasBirthYear)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr error
	}{
		{
			name:    "missing required column",
			lines:   []string{"Start Time,Trip Duration,End Station,User Type", "2017-01-02 08:00:00,600,B,Subscriber"},
			wantErr: ErrDatasetMalformed,
		},
		{
			name:    "bad timestamp",
			lines:   []string{fullHeader, "0,yesterday,2017-01-02 08:10:00,600,A,B,Subscriber,Male,1980"},
			wantErr: ErrDatasetMalformed,
		},
		{
			name:    "non numeric duration",
			lines:   []string{fullHeader, "0,2017-01-02 08:00:00,2017-01-02 08:10:00,long,A,B,Subscriber,Male,1980"},
			wantErr: ErrDatasetMalformed,
		},
		{
			name:    "empty file",
			lines:   []string{""},
			wantErr: ErrDatasetMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeDataset(t, dir, "chicago.csv", tt.lines...)

			_, err := Load(context.Background(), NewCatalog(dir), Selection{City: "chicago", Month: All, Day: All})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var dsErr *DatasetError
			require.ErrorAs(t, err, &dsErr)
			assert.Equal(t, "chicago", dsErr.City)
		})
	}
}

func TestLoad_MissingDataset(t *testing.T) {
	_, err := Load(context.Background(), NewCatalog(t.TempDir()), Selection{City: "washington", Month: All, Day: All})
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestLoad_UnknownCity(t *testing.T) {
	_, err := Load(context.Background(), NewCatalog(t.TempDir()), Selection{City: "boston", Month: All, Day: All})
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestLoad_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeSpreadDataset(t, dir)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, NewCatalog(dir), Selection{City: "chicago", Month: All, Day: All})
	assert.ErrorIs(t, err, context.Canceled)
}

// writeSQLiteDataset creates a trips table with two rows at path.
func writeSQLiteDataset(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE trips (
		"Start Time" TEXT, "Trip Duration" REAL, "Start Station" TEXT,
		"End Station" TEXT, "User Type" TEXT, "Birth Year" REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO trips VALUES
		('2017-05-01 09:00:00', 300, 'A', 'B', 'Subscriber', 1975),
		('2017-05-02 17:15:00', 120.5, 'B', 'C', 'Customer', NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestLoad_SQLiteSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trips.db")
	writeSQLiteDataset(t, path)

	src, err := openSource(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", src.Kind())

	header, records, err := src.Read(context.Background())
	require.NoError(t, err)
	table, err := buildTable("chicago", path, header, records)
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	assert.False(t, table.HasGender)
	assert.True(t, table.HasBirthYear)
	assert.Equal(t, 5, table.Rows[0].Month)
	assert.Equal(t, 0, table.Rows[0].Weekday)
	assert.Equal(t, 17, table.Rows[1].Hour)
	assert.InDelta(t, 1975, table.Rows[0].BirthYear, 1e-9)
	assert.False(t, table.Rows[1].HasBirthYear)
	assert.InDelta(t, 120.5, table.Rows[1].Duration, 1e-9)
}

func TestLoad_SQLiteOnlyDataDir(t *testing.T) {
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		t.Run(ext, func(t *testing.T) {
			dir := t.TempDir()
			writeSQLiteDataset(t, filepath.Join(dir, "chicago"+ext))

			table, err := Load(context.Background(), NewCatalog(dir), Selection{City: "chicago", Month: All, Day: All})
			require.NoError(t, err)
			require.Equal(t, 2, table.Len())
			assert.Equal(t, "A", table.Rows[0].StartStation)
			assert.InDelta(t, 120.5, table.Rows[1].Duration, 1e-9)

			monday, err := Load(context.Background(), NewCatalog(dir), Selection{City: "chicago", Month: "may", Day: "monday"})
			require.NoError(t, err)
			assert.Equal(t, 1, monday.Len())
		})
	}
}

func TestCatalog_PrefersCSVOverSQLite(t *testing.T) {
	dir := t.TempDir()
	writeSQLiteDataset(t, filepath.Join(dir, "chicago.db"))
	writeSpreadDataset(t, dir)

	path, err := NewCatalog(dir).Path("chicago")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chicago.csv"), path)
}

func TestSQLiteSource_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sqlite")
	_, _, err := sqliteSource{path: path}.Read(context.Background())

	var nf errNotFound
	assert.ErrorAs(t, err, &nf)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "reading must not create the database")
}

func TestOpenSource_UnsupportedExtension(t *testing.T) {
	_, err := openSource("trips.parquet")
	assert.Error(t, err)
}
