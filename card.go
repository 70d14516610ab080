package deckbox

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order when parsing the Last Updated column.
// Exports have carried both full timestamps and bare dates over time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Card is one line item of an export: a quantity of one printing variant in
// one condition. A card is immutable after construction except for its
// count, which only changes by aggregation inside a Collection or by
// cloning.
type Card struct {
	edition  string
	number   string
	name     string
	cardType string
	cost     string
	rarity   string
	count    int
	cond     Condition
	language string

	// special-printing flags: empty means absent, non-empty is the
	// descriptive string from the export ("foil", "signed", ...).
	foil        string
	signed      string
	artistProof string
	alteredArt  string
	misprint    string
	promo       string
	textless    string

	imageURL string

	price       Price
	myPrice     Price
	lastUpdated time.Time
}

// NewCard builds a card from an ingested row.
//
// Count is the only field that can fail construction: a card without a
// parseable non-negative quantity is meaningless. Price fields are
// recoverable per field: an absent or unparseable price leaves that price
// unknown instead of failing the row.
func NewCard(row Row) (*Card, error) {
	c := &Card{
		edition:     strings.TrimSpace(row.Get(ColEdition)),
		number:      strings.TrimSpace(row.Get(ColNumber)),
		name:        row.Get(ColName),
		cardType:    row.Get(ColType),
		cost:        row.Get(ColCost),
		rarity:      row.Get(ColRarity),
		cond:        Condition(strings.TrimSpace(row.Get(ColCondition))),
		language:    strings.TrimSpace(row.Get(ColLanguage)),
		foil:        strings.TrimSpace(row.Get(ColFoil)),
		signed:      strings.TrimSpace(row.Get(ColSigned)),
		artistProof: strings.TrimSpace(row.Get(ColArtistProof)),
		alteredArt:  strings.TrimSpace(row.Get(ColAlteredArt)),
		misprint:    strings.TrimSpace(row.Get(ColMisprint)),
		promo:       strings.TrimSpace(row.Get(ColPromo)),
		textless:    strings.TrimSpace(row.Get(ColTextless)),
		imageURL:    strings.TrimSpace(row.Get(ColImageURL)),
	}

	rawCount, ok := row.Lookup(ColCount)
	if !ok {
		return nil, fmt.Errorf("card %q (%s): missing count", c.name, c.edition)
	}
	count, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil {
		return nil, fmt.Errorf("card %q (%s): invalid count %q", c.name, c.edition, rawCount)
	}
	if count < 0 {
		return nil, fmt.Errorf("card %q (%s): negative count %d", c.name, c.edition, count)
	}
	c.count = count

	// recoverable per-field policy: bad price cells leave the price unknown.
	if raw, ok := row.Lookup(ColPrice); ok {
		if p, err := ParsePrice(raw); err == nil {
			c.price = p
		}
	}
	if raw, ok := row.Lookup(ColMyPrice); ok {
		if p, err := ParsePrice(raw); err == nil {
			c.myPrice = p
		}
	}
	if raw, ok := row.Lookup(ColLastUpdated); ok {
		c.lastUpdated = parseTimestamp(raw)
	}

	return c, nil
}

// parseTimestamp parses a Last Updated cell, returning the zero time when no
// layout matches.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (c *Card) Edition() string      { return c.edition }
func (c *Card) Number() string       { return c.number }
func (c *Card) Name() string         { return c.name }
func (c *Card) CardType() string     { return c.cardType }
func (c *Card) Cost() string         { return c.cost }
func (c *Card) Rarity() string       { return c.rarity }
func (c *Card) Count() int           { return c.count }
func (c *Card) Condition() Condition { return c.cond }
func (c *Card) Language() string     { return c.language }
func (c *Card) ImageURL() string     { return c.imageURL }

// LastUpdated returns when the export captured the market price, and
// whether that information was present.
func (c *Card) LastUpdated() (time.Time, bool) {
	return c.lastUpdated, !c.lastUpdated.IsZero()
}

func (c *Card) IsFoil() bool        { return c.foil != "" }
func (c *Card) IsSigned() bool      { return c.signed != "" }
func (c *Card) IsArtistProof() bool { return c.artistProof != "" }
func (c *Card) IsAlteredArt() bool  { return c.alteredArt != "" }
func (c *Card) IsMisprint() bool    { return c.misprint != "" }
func (c *Card) IsPromo() bool       { return c.promo != "" }
func (c *Card) IsTextless() bool    { return c.textless != "" }

// Features returns the descriptive strings of the special-printing flags
// that are present, in declaration order.
func (c *Card) Features() []string {
	var features []string
	for _, f := range []string{
		c.foil, c.signed, c.artistProof, c.alteredArt,
		c.misprint, c.promo, c.textless,
	} {
		if f != "" {
			features = append(features, f)
		}
	}
	return features
}

// ImageFileName returns the last path segment of the image URL, or "" when
// there is no image reference.
func (c *Card) ImageFileName() string {
	if c.imageURL == "" {
		return ""
	}
	parts := strings.Split(c.imageURL, "/")
	return parts[len(parts)-1]
}

// ImageFileStem returns the image file name without its extension.
func (c *Card) ImageFileStem() string {
	return strings.TrimSuffix(c.ImageFileName(), "."+fileExt(c.ImageFileName()))
}

func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// Printing returns the key identifying this printing variant, independent of
// condition and count.
func (c *Card) Printing() PrintingKey {
	return PrintingKey{
		Edition:     c.edition,
		Number:      c.number,
		Name:        c.name,
		Language:    c.language,
		Foil:        c.foil,
		Signed:      c.signed,
		ArtistProof: c.artistProof,
		AlteredArt:  c.alteredArt,
		Misprint:    c.misprint,
		Promo:       c.promo,
		Textless:    c.textless,
		ImageFile:   c.ImageFileName(),
	}
}

// Identity returns the key a collection deduplicates on: the printing plus
// the condition.
func (c *Card) Identity() IdentityKey {
	return IdentityKey{Printing: c.Printing(), Condition: c.cond}
}

// Price is the marketplace price captured at export time, unknown when the
// export had none.
func (c *Card) Price() Price { return c.price }

// ConditionAdjustedPrice discounts the market price by the card's wear
// grade.
func (c *Card) ConditionAdjustedPrice() Price {
	return c.price.MulDecimal(c.cond.Multiplier())
}

// MyPrice is the owner-set price, unknown when unset.
func (c *Card) MyPrice() Price { return c.myPrice }

func (c *Card) TotalPrice() Price { return c.price.MulCount(c.count) }

func (c *Card) TotalConditionAdjustedPrice() Price {
	return c.ConditionAdjustedPrice().MulCount(c.count)
}

func (c *Card) TotalMyPrice() Price { return c.myPrice.MulCount(c.count) }

// Description is the human-readable form used in listings and diagnostics:
// name, edition, padded card number, condition and titled features.
func (c *Card) Description() string {
	return c.DescriptionPad(defaultNumberPad)
}

const defaultNumberPad = 3

// DescriptionPad is Description with an explicit zero-pad width for the
// card number.
func (c *Card) DescriptionPad(width int) string {
	qualifiers := make([]string, 0, 8)
	if c.cond != Ungraded {
		qualifiers = append(qualifiers, string(c.cond))
	}
	for _, f := range c.Features() {
		qualifiers = append(qualifiers, titleCase(f))
	}
	return fmt.Sprintf("%s (%s, #%s) | %s",
		c.name, c.edition, padNumber(c.number, width), strings.Join(qualifiers, ", "))
}

// PrintingDescription describes the printing without condition, used when a
// price lookup fails for a whole printing.
func (c *Card) PrintingDescription() string {
	desc := fmt.Sprintf("%s (%s, #%s)", c.name, c.edition, padNumber(c.number, defaultNumberPad))
	if features := c.Features(); len(features) > 0 {
		titled := make([]string, len(features))
		for i, f := range features {
			titled[i] = titleCase(f)
		}
		desc += " | " + strings.Join(titled, ", ")
	}
	return desc
}

// padNumber zero-pads numeric card numbers to the given width. Promotional
// and un-set numbers can be alphanumeric; those are returned unchanged
// rather than guessed at.
func padNumber(number string, width int) string {
	if n, err := strconv.ParseUint(number, 10, 64); err == nil {
		return fmt.Sprintf("%0*d", width, n)
	}
	return number
}

// titleCase uppercases the first letter of each space-separated word, the
// way feature flags are conventionally displayed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// String renders the card as "count x description".
func (c *Card) String() string {
	return fmt.Sprintf("%d x %s", c.count, c.Description())
}

// Clone returns a fully independent copy. Diff results are materialized
// through clones because their counts go negative without touching the
// source collections.
func (c *Card) Clone() *Card {
	clone := *c
	return &clone
}

// CloneCount returns an independent copy with the count overridden.
func (c *Card) CloneCount(count int) *Card {
	clone := *c
	clone.count = count
	return &clone
}
