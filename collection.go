package deckbox

import (
	"errors"
	"fmt"
	"slices"
)

// ErrPriceUnavailable reports that a printing could not be priced against a
// collection: either the printing was never seen there, or its
// representative record carries no price. Aggregates that depend on a
// failed lookup fail as a whole, they never report a partial sum.
var ErrPriceUnavailable = errors.New("price unavailable")

// Collection is an aggregation of cards keyed by identity. Adding a card
// whose identity is already present sums the counts; the collection never
// holds two records for one identity key.
//
// Independently of identity aggregation, every added card is appended to a
// per-printing index. That index keeps all observed records for a printing,
// one per ingested condition variant, in insertion order; price attribution
// reads the first-inserted one. Two differing observed prices for a
// printing are accepted, first wins.
//
// A collection exclusively owns its cards: Add stores a private clone, and
// every derived collection or diff record is independently owned.
type Collection struct {
	cards     map[IdentityKey]*Card
	printings map[PrintingKey][]*Card
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		cards:     make(map[IdentityKey]*Card),
		printings: make(map[PrintingKey][]*Card),
	}
}

// Add merges a card into the collection. If a record with the same identity
// key exists its count is incremented; otherwise a clone of the card
// becomes the record for that identity. The card is always appended to the
// printing index, so later price fallback can see every observed price
// point.
func (s *Collection) Add(card *Card) {
	c := card.Clone()
	if existing, ok := s.cards[c.Identity()]; ok {
		existing.count += c.count
	} else {
		s.cards[c.Identity()] = c
	}
	s.printings[c.Printing()] = append(s.printings[c.Printing()], c)
}

// Match returns the record with the same identity key as card, or nil.
func (s *Collection) Match(card *Card) *Card {
	return s.cards[card.Identity()]
}

// Contains reports whether the collection holds a record with the same
// identity key and the identical count. It is an equality test at
// single-card granularity, not mere presence.
func (s *Collection) Contains(card *Card) bool {
	match := s.Match(card)
	return match != nil && match.count == card.count
}

// ContainsPrinting reports whether any record shares the card's printing
// key, in any condition and any quantity.
func (s *Collection) ContainsPrinting(card *Card) bool {
	return len(s.printings[card.Printing()]) > 0
}

// Union returns a new collection holding all records of both inputs,
// re-aggregated, leaving both inputs untouched.
func (s *Collection) Union(other *Collection) *Collection {
	union := NewCollection()
	for _, c := range s.cards {
		union.Add(c)
	}
	for _, c := range other.cards {
		union.Add(c)
	}
	return union
}

// Equal reports whether both collections hold exactly the same identity
// keys with the same counts.
func (s *Collection) Equal(other *Collection) bool {
	for _, c := range s.cards {
		if !other.Contains(c) {
			return false
		}
	}
	for _, c := range other.cards {
		if !s.Contains(c) {
			return false
		}
	}
	return true
}

// Size is the total physical card count: the sum of counts across all
// records, not the number of distinct printings.
func (s *Collection) Size() int {
	total := 0
	for _, c := range s.cards {
		total += c.count
	}
	return total
}

// Distinct is the number of identity-distinct records held.
func (s *Collection) Distinct() int { return len(s.cards) }

// Cards returns the records ordered by identity key. The returned cards are
// the collection's own records; callers must treat them as read-only.
func (s *Collection) Cards() []*Card {
	cards := make([]*Card, 0, len(s.cards))
	for _, c := range s.cards {
		cards = append(cards, c)
	}
	slices.SortFunc(cards, func(a, b *Card) int {
		return a.Identity().Compare(b.Identity())
	})
	return cards
}

// Diff computes the change from s to other, where s is the baseline and
// other the comparison target. The operation is directional, not a
// symmetric set difference:
//
//   - an identity present in both with differing counts yields a clone
//     carrying the signed delta (other minus s);
//   - an identity only in s yields a clone with a fully negated count, a
//     removal;
//   - an identity only in other yields an unchanged clone, an addition.
//
// Identities with equal counts on both sides yield nothing. The result is
// sorted by identity key, every record an independent clone.
func (s *Collection) Diff(other *Collection) []*Card {
	var deltas []*Card
	for _, c := range s.cards {
		match := other.Match(c)
		switch {
		case match == nil:
			deltas = append(deltas, c.CloneCount(-c.count))
		case match.count != c.count:
			deltas = append(deltas, c.CloneCount(match.count-c.count))
		}
	}
	for _, o := range other.cards {
		if s.Match(o) == nil {
			deltas = append(deltas, o.Clone())
		}
	}
	slices.SortFunc(deltas, func(a, b *Card) int {
		return a.Identity().Compare(b.Identity())
	})
	return deltas
}

// DiffSet wraps the Diff result in a new collection. Diff records are
// already unique per identity, aggregation on insert is a no-op; the
// wrapper exists so callers can apply collection pricing to a diff.
func (s *Collection) DiffSet(other *Collection) *Collection {
	diff := NewCollection()
	for _, c := range s.Diff(other) {
		diff.Add(c)
	}
	return diff
}

// ApplyCardPricing prices card's quantity using this collection's price
// data: the unit price of the first-inserted record sharing the card's
// printing key, multiplied by the card's count, and by the card's condition
// multiplier when conditionAdjusted is set. Quantity and condition come
// from the card, the unit price comes from this collection.
//
// It fails with ErrPriceUnavailable when the printing is unseen here or its
// representative record has no price.
func (s *Collection) ApplyCardPricing(card *Card, conditionAdjusted bool) (Price, error) {
	variants := s.printings[card.Printing()]
	if len(variants) == 0 {
		return Price{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, card.PrintingDescription())
	}
	unit := variants[0].Price()
	if !unit.Known() {
		return Price{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, card.PrintingDescription())
	}
	result := unit.MulCount(card.count)
	if conditionAdjusted {
		result = result.MulDecimal(card.cond.Multiplier())
	}
	return result, nil
}

// TotalAppliedPrice values every record of s against pricing's price data.
// It is all or nothing: a single unpriceable record fails the whole
// aggregate with ErrPriceUnavailable.
func (s *Collection) TotalAppliedPrice(pricing *Collection, conditionAdjusted bool) (Price, error) {
	total := P(0)
	for _, c := range s.cards {
		applied, err := pricing.ApplyCardPricing(c, conditionAdjusted)
		if err != nil {
			return Price{}, err
		}
		total = total.Add(applied)
	}
	return total, nil
}

// DiffPrice values the change from s to other using other's price data.
func (s *Collection) DiffPrice(other *Collection, conditionAdjusted bool) (Price, error) {
	return s.DiffSet(other).TotalAppliedPrice(other, conditionAdjusted)
}

// TotalPrice sums the total market price of all records. Records with an
// unknown price are excluded from the sum, not counted as zero.
func (s *Collection) TotalPrice() Price {
	total := P(0)
	for _, c := range s.cards {
		if t := c.TotalPrice(); t.Known() {
			total = total.Add(t)
		}
	}
	return total
}

// TotalConditionAdjustedPrice sums the condition-adjusted totals of all
// priced records, with the same exclusion rule as TotalPrice.
func (s *Collection) TotalConditionAdjustedPrice() Price {
	total := P(0)
	for _, c := range s.cards {
		if t := c.TotalConditionAdjustedPrice(); t.Known() {
			total = total.Add(t)
		}
	}
	return total
}

// TotalMyPrice sums the owner-set totals of all records carrying one.
func (s *Collection) TotalMyPrice() Price {
	total := P(0)
	for _, c := range s.cards {
		if t := c.TotalMyPrice(); t.Known() {
			total = total.Add(t)
		}
	}
	return total
}
