package deckbox

import "strings"

// A card line item is identified at two granularities.
//
// PrintingKey identifies one printing variant: a specific card in a specific
// edition with specific special-printing attributes, independent of the
// condition of any owned copy. Price lookups group by printing, because a
// printing's market price does not depend on the wear of one copy.
//
// IdentityKey is a printing plus a condition: the finest granularity a
// collection deduplicates on.
//
// Earlier versions of the export schema identified a card by edition, number
// and name alone; the key grew as deckbox added variant attributes, which is
// why the shape is kept in one place instead of field lists scattered across
// methods.

// PrintingKey identifies a printing variant.
type PrintingKey struct {
	Edition     string
	Number      string
	Name        string
	Language    string
	Foil        string
	Signed      string
	ArtistProof string
	AlteredArt  string
	Misprint    string
	Promo       string
	Textless    string
	// ImageFile disambiguates variants sharing edition+number: un-sets and
	// promo sets sometimes reuse a number with different art.
	ImageFile string
}

// fields returns the key as an ordered tuple. The order is fixed for
// deterministic comparison, it carries no meaning beyond that.
func (k PrintingKey) fields() []string {
	return []string{
		k.Edition, k.Number, k.Name, k.Language,
		k.Foil, k.Signed, k.ArtistProof, k.AlteredArt,
		k.Misprint, k.Promo, k.Textless,
		k.ImageFile,
	}
}

// Compare orders printing keys lexicographically over the field tuple.
func (k PrintingKey) Compare(o PrintingKey) int {
	a, b := k.fields(), o.fields()
	for i := range a {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func (k PrintingKey) String() string {
	return strings.Join(k.fields(), "|")
}

// IdentityKey identifies a printing in a specific condition.
type IdentityKey struct {
	Printing  PrintingKey
	Condition Condition
}

// Compare orders identity keys by printing first, then condition.
func (k IdentityKey) Compare(o IdentityKey) int {
	if c := k.Printing.Compare(o.Printing); c != 0 {
		return c
	}
	return strings.Compare(string(k.Condition), string(o.Condition))
}

func (k IdentityKey) String() string {
	return k.Printing.String() + "|" + string(k.Condition)
}
