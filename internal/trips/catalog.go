package trips

import (
	"os"
	"path/filepath"
	"strings"
)

// cityFiles maps each supported city to the base name of its dataset file.
var cityFiles = map[string]string{
	"chicago":       "chicago",
	"new york city": "new_york_city",
	"washington":    "washington",
}

// datasetExtensions are probed in order; the first existing file wins.
var datasetExtensions = []string{".csv", ".db", ".sqlite", ".sqlite3"}

// cityOrder is the order cities are presented to the user.
var cityOrder = []string{"chicago", "new york city", "washington"}

// Catalog resolves city names to dataset locations under a data directory.
// The set of cities is fixed; only the directory they are read from varies.
type Catalog struct {
	dataDir string
}

// NewCatalog returns a catalog reading datasets from dataDir.
func NewCatalog(dataDir string) Catalog {
	if dataDir == "" {
		dataDir = "."
	}
	return Catalog{dataDir: dataDir}
}

// DataDir returns the directory datasets are resolved against.
func (c Catalog) DataDir() string {
	return c.dataDir
}

// Cities returns the supported city keys in presentation order.
func (c Catalog) Cities() []string {
	out := make([]string, len(cityOrder))
	copy(out, cityOrder)
	return out
}

// Has reports whether city (already normalized) is a catalog key.
func (c Catalog) Has(city string) bool {
	_, ok := cityFiles[city]
	return ok
}

// Path returns the dataset location for city: the first of <city>.csv,
// .db, .sqlite and .sqlite3 present in the data directory. When none exists
// the .csv path is returned so the load error names it.
func (c Catalog) Path(city string) (string, error) {
	base, ok := cityFiles[city]
	if !ok {
		return "", &DatasetError{City: city, Err: ErrDatasetNotFound, Reason: "city is not in the catalog"}
	}
	for _, ext := range datasetExtensions {
		candidate := filepath.Join(c.dataDir, base+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return filepath.Join(c.dataDir, base+datasetExtensions[0]), nil
}

// NormalizeCity lowercases and trims a user supplied city name.
func NormalizeCity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DisplayCity renders a city key for output, e.g. "new york city" -> "New York City".
func DisplayCity(city string) string {
	words := strings.Fields(city)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
