package deckbox

// Column names of the deckbox export schema. The schema is the contract
// with the export producer and must not drift.
const (
	ColEdition     = "Edition"
	ColNumber      = "Card Number"
	ColName        = "Name"
	ColType        = "Type"
	ColCost        = "Cost"
	ColRarity      = "Rarity"
	ColCount       = "Count"
	ColCondition   = "Condition"
	ColLanguage    = "Language"
	ColFoil        = "Foil"
	ColSigned      = "Signed"
	ColArtistProof = "Artist Proof"
	ColAlteredArt  = "Altered Art"
	ColMisprint    = "Misprint"
	ColPromo       = "Promo"
	ColTextless    = "Textless"
	ColImageURL    = "Image URL"
	ColPrice       = "Price"
	ColMyPrice     = "My Price"
	ColLastUpdated = "Last Updated"
)

// Row is one ingested export line: named fields keyed by column name.
// A field that was blank or whose column is missing from the file is not
// set at all, so "missing" stays distinguishable from an empty string.
type Row struct {
	fields map[string]string
}

// NewRow returns an empty row.
func NewRow() Row {
	return Row{fields: make(map[string]string)}
}

// RowOf builds a row from a field map. Useful in tests.
func RowOf(fields map[string]string) Row {
	r := NewRow()
	for col, v := range fields {
		r.fields[col] = v
	}
	return r
}

// Set records a field value.
func (r Row) Set(col, value string) { r.fields[col] = value }

// Lookup returns a field value and whether it was present.
func (r Row) Lookup(col string) (string, bool) {
	v, ok := r.fields[col]
	return v, ok
}

// Get returns a field value, or "" when missing.
func (r Row) Get(col string) string { return r.fields[col] }
