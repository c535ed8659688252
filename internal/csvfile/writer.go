package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"nba-fantasy-etl/internal/domain"
)

// Result describes a written table file.
type Result struct {
	Path string
	Rows int
}

// Writer persists table extracts as CSV files under one directory and keeps
// the manifest current. Files land via a temp file and rename, so a crashed
// run never leaves a half-written extract behind.
type Writer struct {
	baseDir string
}

// NewWriter constructs a writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// BaseDir exposes the writer root path (primarily for testing).
func (w *Writer) BaseDir() string {
	if w == nil {
		return ""
	}
	return w.baseDir
}

// TablePath returns where the extract for a table lives.
func (w *Writer) TablePath(table string) string {
	return filepath.Join(w.baseDir, table+".csv")
}

// WriteTable writes the extract for schema's table: one header row naming
// the columns, then the data rows. Every row must match the schema's width.
func (w *Writer) WriteTable(schema domain.TableSchema, rows [][]string) (Result, error) {
	if w == nil {
		return Result{}, fmt.Errorf("csv writer not configured")
	}
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return Result{}, err
	}

	header := schema.ColumnNames()
	for i, row := range rows {
		if len(row) != len(header) {
			return Result{}, fmt.Errorf("%s row %d has %d fields, want %d",
				schema.Name, i, len(row), len(header))
		}
	}

	target := w.TablePath(schema.Name)
	tmp := target + ".tmp"

	if err := writeCSV(tmp, header, rows); err != nil {
		os.Remove(tmp)
		return Result{}, err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return Result{}, err
	}

	if err := w.recordTable(schema.Name, filepath.Base(target), len(rows)); err != nil {
		return Result{}, err
	}
	return Result{Path: target, Rows: len(rows)}, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
