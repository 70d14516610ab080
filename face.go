package deckbox

import "strings"

// faceSeparator joins the faces of a multi-faced card inside the Name, Type
// and Cost columns of an export.
const faceSeparator = "//"

// flipEditions are the expansions whose two-faced cards use the flip
// mechanic (the card rotates) rather than the transform mechanic (the card
// turns over).
var flipEditions = map[string]bool{
	"Champions of Kamigawa": true,
	"Betrayers of Kamigawa": true,
	"Saviors of Kamigawa":   true,
}

// Face is one printable side or half of a multi-faced card, derived from
// the card's name, type and cost by position. Faces are descriptive only:
// they take no part in identity or pricing.
type Face struct {
	Name string
	Type string
	Cost string

	// The export encodes a back face by omitting its name and cost, so
	// presence is tracked separately from the empty string.
	HasName bool
	HasType bool
	HasCost bool

	flip bool
}

// IsTransformed reports whether the face is the hidden side of a transform
// card: it has neither a name nor a cost of its own.
func (f Face) IsTransformed() bool {
	return !f.HasName && !f.HasCost && !f.flip
}

// IsFlipped reports whether the face is the hidden side of a flip card,
// which applies instead of IsTransformed for the flip-mechanic expansions.
func (f Face) IsFlipped() bool {
	return !f.HasName && !f.HasCost && f.flip
}

// Faces splits the card into its per-face descriptors. A single-faced card
// yields one face. The result is a fresh slice on every call, so callers
// can traverse it as often as display requires.
func (c *Card) Faces() []Face {
	names := splitFaces(c.name)
	types := splitFaces(c.cardType)
	costs := splitFaces(c.cost)

	n := max(len(names), max(len(types), len(costs)))
	flip := flipEditions[c.edition]

	faces := make([]Face, 0, n)
	for i := 0; i < n; i++ {
		f := Face{flip: flip}
		if i < len(names) {
			f.Name, f.HasName = names[i], true
		}
		if i < len(types) {
			f.Type, f.HasType = types[i], true
		} else if len(types) > 0 && strings.Contains(types[0], "Token") {
			// token inserts list only the front face type.
			f.Type, f.HasType = "Token", true
		}
		if i < len(costs) {
			f.Cost, f.HasCost = costs[i], true
		}
		faces = append(faces, f)
	}
	return faces
}

func splitFaces(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, faceSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
