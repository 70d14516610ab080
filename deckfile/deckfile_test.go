package deckfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	deckbox "github.com/cardsmith/deckboxdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Count,Name,Edition,Card Number,Condition,Language,Foil,Price
4,Ajani Goldmane,Magic 2010,1,Near Mint,English,,$2.00
1,Ajani Goldmane,Magic 2010,1,Near Mint,English,,$2.00
2,Fblthp the Lost,War of the Spark,50,Played,English,foil,$1.50
`

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Ajani Goldmane", rows[0].Get(deckbox.ColName))
	assert.Equal(t, "4", rows[0].Get(deckbox.ColCount))

	// blank cells stay missing, distinct from the empty string
	_, present := rows[0].Lookup(deckbox.ColFoil)
	assert.False(t, present, "blank Foil cell should be missing")
	foil, present := rows[2].Lookup(deckbox.ColFoil)
	assert.True(t, present)
	assert.Equal(t, "foil", foil)
}

func TestReadCSV_Empty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)

	headerOnly, err := ReadCSV(strings.NewReader("Count,Name\n"))
	require.NoError(t, err)
	assert.Empty(t, headerOnly)
}

func TestCollect(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	set, err := Collect(rows)
	require.NoError(t, err)

	// the two Ajani rows share an identity and aggregate
	assert.Equal(t, 2, set.Distinct())
	assert.Equal(t, 7, set.Size())
}

func TestCollect_BadCount(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Count,Name\nmany,Fblthp\n"))
	require.NoError(t, err)

	_, err = Collect(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
	assert.Contains(t, err.Error(), "Fblthp")
}

func TestRead_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.ods")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0o644))

	_, err := Read(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRead_CSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	set, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 7, set.Size())
}

// buildXLSX assembles a minimal workbook in memory.
func buildXLSX(t *testing.T, records [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &record))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadXLSX(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"Count", "Name", "Edition", "Price"},
		{"2", "SÃ©ance", "Dark Ascension", "$0.35"},
	})

	rows, err := ReadXLSX(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// the built-in mojibake cleanup repairs the Name column
	assert.Equal(t, "Séance", rows[0].Get(deckbox.ColName))
	assert.Equal(t, "$0.35", rows[0].Get(deckbox.ColPrice))
}

func TestReadXLSX_ExtraCleanups(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"Count", "Name"},
		{"1", "JuzÃ¡m Djinn"},
	})

	rows, err := ReadXLSX(bytes.NewReader(data), Cleanup{From: "Ã¡", To: "á"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Juzám Djinn", rows[0].Get(deckbox.ColName))
}

func TestRead_XLSXFile(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"Count", "Name", "Edition"},
		{"3", "Storm Crow", "Ninth Edition"},
	})
	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	set, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Size())
}
