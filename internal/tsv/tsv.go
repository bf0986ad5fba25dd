// Package tsv reads and writes tab-delimited reports with a header row.
// Output files are written atomically: readers see either the previous file
// or the complete new one, never a partial table.
package tsv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoHeader reports an input with no header row.
var ErrNoHeader = errors.New("report has no header row")

// Table is a header plus the rows that follow it.
type Table struct {
	Header []string
	Rows   [][]string
	// Lines holds the 1-based input line each row started on.
	Lines []int
}

// Read parses a tab-delimited report. Blank lines are skipped; rows may have
// any number of fields.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	t := &Table{Header: header}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading rows: %w", err)
		}
		line, _ := cr.FieldPos(0)
		t.Rows = append(t.Rows, rec)
		t.Lines = append(t.Lines, line)
	}
	return t, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Write emits header and rows as tab-delimited text. A field is quoted only
// when it contains a tab, a double quote, or a line break; everything else,
// including leading or trailing spaces, is written verbatim.
func Write(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, header)
	for _, row := range rows {
		writeRecord(bw, row)
	}
	return bw.Flush()
}

// writeRecord relies on bufio.Writer keeping the first error for Flush.
func writeRecord(bw *bufio.Writer, record []string) {
	for i, field := range record {
		if i > 0 {
			_ = bw.WriteByte('\t')
		}
		// a lone empty field is quoted so the row is not read back as blank
		if needsQuotes(field) || (len(record) == 1 && field == "") {
			_ = bw.WriteByte('"')
			_, _ = bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
			_ = bw.WriteByte('"')
			continue
		}
		_, _ = bw.WriteString(field)
	}
	_ = bw.WriteByte('\n')
}

func needsQuotes(field string) bool {
	return strings.ContainsAny(field, "\t\"\r\n")
}

// WriteFile writes the table to a temporary file beside path and renames it
// into place once every row is flushed. Symlinked targets are rejected.
func WriteFile(path string, header []string, rows [][]string) error {
	if info, err := os.Lstat(path); err == nil {
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("output file is a symlink (rejected): %s", path)
		}
		if info.IsDir() {
			return fmt.Errorf("output path is a directory: %s", path)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := Write(tmp, header, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("finalizing %s: %w", path, err)
	}
	committed = true
	return nil
}
