package deckbox

// ValueReport summarizes a single collection: how many cards it holds and
// what they are worth.
type ValueReport struct {
	// Name labels the snapshot, typically the file name.
	Name string

	// TotalCards is the physical card count, DistinctEntries the number of
	// identity-distinct records.
	TotalCards      int
	DistinctEntries int

	Total             Price
	ConditionAdjusted Price
	MyTotal           Price
}

// NewValueReport builds the summary for one collection.
func NewValueReport(name string, set *Collection) *ValueReport {
	return &ValueReport{
		Name:              name,
		TotalCards:        set.Size(),
		DistinctEntries:   set.Distinct(),
		Total:             set.TotalPrice(),
		ConditionAdjusted: set.TotalConditionAdjustedPrice(),
		MyTotal:           set.TotalMyPrice(),
	}
}

// ListingReport is a plain sorted listing of a collection's records.
type ListingReport struct {
	Name       string
	TotalCards int
	Entries    []DiffEntry
}

// NewListingReport builds the listing for one collection, sorted by
// identity key.
func NewListingReport(name string, set *Collection, numberPad int) *ListingReport {
	if numberPad <= 0 {
		numberPad = defaultNumberPad
	}
	report := &ListingReport{Name: name, TotalCards: set.Size()}
	for _, c := range set.Cards() {
		report.Entries = append(report.Entries, DiffEntry{
			Count:       c.Count(),
			Description: c.DescriptionPad(numberPad),
		})
	}
	return report
}
