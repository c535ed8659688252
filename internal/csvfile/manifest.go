package csvfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks which table extracts exist and when they were refreshed.
type Manifest struct {
	Version     int                  `json:"version"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Tables      map[string]TableMeta `json:"tables"`
}

// TableMeta describes one table's extract.
type TableMeta struct {
	File          string    `json:"file"`
	Rows          int       `json:"rows"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Tables:  map[string]TableMeta{},
	}
}

// ReadManifest loads the manifest under baseDir, or a fresh one if none
// exists yet.
func ReadManifest(baseDir string) (Manifest, error) {
	f, err := os.Open(filepath.Join(baseDir, "manifest.json"))
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	if m.Tables == nil {
		m.Tables = map[string]TableMeta{}
	}
	return m, nil
}

func (w *Writer) recordTable(table, file string, rows int) error {
	m, _ := ReadManifest(w.baseDir)
	m.Tables[table] = TableMeta{
		File:          file,
		Rows:          rows,
		LastRefreshed: time.Now().UTC(),
	}
	return writeManifest(w.baseDir, m)
}

func writeManifest(baseDir string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(baseDir, "manifest.json")
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
