// Package deckfile reads deckbox.org export files into deckbox rows and
// collections. It understands the two formats the export producer emits,
// CSV and XLSX, and nothing else.
package deckfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	deckbox "github.com/cardsmith/deckboxdiff"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("only CSV and XLSX files are supported")

// Cleanup is a text substitution applied to the Name column of XLSX rows.
// Excel exports mangle some non-ASCII characters; the substitutions undo
// the known mojibake.
type Cleanup struct {
	From string
	To   string
}

// defaultCleanups covers the mojibake observed in real Excel exports.
var defaultCleanups = []Cleanup{
	{From: "Ã©", To: "é"},
}

// Read loads an export file into a collection, detecting the format from
// the file extension. Extra cleanups extend the built-in XLSX substitution
// list. An export with no data rows yields a valid empty collection.
func Read(path string, extra ...Cleanup) (*deckbox.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open export file: %w", err)
	}
	defer f.Close()

	var rows []deckbox.Row
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = ReadCSV(f)
	case ".xlsx":
		rows, err = ReadXLSX(f, extra...)
	default:
		return nil, fmt.Errorf("%w, got %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read export file %q: %w", path, err)
	}
	return Collect(rows)
}

// ReadCSV parses a CSV export. The first record is the header; data cells
// are keyed by the header's column names. Blank cells are left out of the
// row entirely, keeping "missing" distinct from an empty string.
func ReadCSV(r io.Reader) ([]deckbox.Row, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}

	var rows []deckbox.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read record: %w", err)
		}
		rows = append(rows, makeRow(header, record))
	}
	return rows, nil
}

// ReadXLSX parses an XLSX export from its first sheet, applying the
// mojibake cleanups to the Name column.
func ReadXLSX(r io.Reader, extra ...Cleanup) ([]deckbox.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cleanups := append(append([]Cleanup{}, defaultCleanups...), extra...)
	header := records[0]
	var rows []deckbox.Row
	for _, record := range records[1:] {
		row := makeRow(header, record)
		if name, ok := row.Lookup(deckbox.ColName); ok {
			row.Set(deckbox.ColName, cleanName(name, cleanups))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Collect folds rows into a collection, aggregating duplicate identities.
func Collect(rows []deckbox.Row) (*deckbox.Collection, error) {
	set := deckbox.NewCollection()
	for i, row := range rows {
		card, err := deckbox.NewCard(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		set.Add(card)
	}
	return set, nil
}

func makeRow(header, record []string) deckbox.Row {
	row := deckbox.NewRow()
	for i, col := range header {
		if i >= len(record) {
			break
		}
		if record[i] == "" {
			continue
		}
		row.Set(col, record[i])
	}
	return row
}

func cleanName(name string, cleanups []Cleanup) string {
	for _, c := range cleanups {
		name = strings.ReplaceAll(name, c.From, c.To)
	}
	return name
}
