package deckbox

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// cardRow returns a complete export row that tests override per case. An
// empty override removes the field, standing in for a blank export cell.
func cardRow(overrides map[string]string) Row {
	fields := map[string]string{
		ColEdition:  "Magic 2010",
		ColNumber:   "1",
		ColName:     "Ajani Goldmane",
		ColType:     "Planeswalker  - Ajani",
		ColCost:     "2WW",
		ColRarity:   "Mythic Rare",
		ColCount:    "2",
		ColLanguage: "English",
		ColImageURL: "https://example.org/images/ajani-goldmane.jpg",
	}
	for col, v := range overrides {
		if v == "" {
			delete(fields, col)
			continue
		}
		fields[col] = v
	}
	return RowOf(fields)
}

func mustCard(t *testing.T, overrides map[string]string) *Card {
	t.Helper()
	card, err := NewCard(cardRow(overrides))
	if err != nil {
		t.Fatalf("NewCard() failed: %v", err)
	}
	return card
}

func TestNewCard_Count(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "plain", raw: "4", want: 4},
		{name: "padded", raw: " 4 ", want: 4},
		{name: "zero", raw: "0", want: 0},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "non numeric", raw: "four", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := cardRow(nil)
			row.Set(ColCount, tc.raw)
			card, err := NewCard(row)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewCard() = %v, want error", card)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCard() failed: %v", err)
			}
			if card.Count() != tc.want {
				t.Errorf("Count() = %d, want %d", card.Count(), tc.want)
			}
		})
	}
}

func TestNewCard_MissingCount(t *testing.T) {
	row := RowOf(map[string]string{ColName: "Ajani Goldmane", ColEdition: "Magic 2010"})
	if _, err := NewCard(row); err == nil {
		t.Fatal("NewCard() without a count should fail")
	}
}

func TestNewCard_PriceIsRecoverable(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		wantKnown bool
		want      float64
	}{
		{name: "dollar prefix", raw: "$2.49", wantKnown: true, want: 2.49},
		{name: "bare decimal", raw: "0.15", wantKnown: true, want: 0.15},
		{name: "garbage", raw: "N/A", wantKnown: false},
		{name: "blank", raw: " ", wantKnown: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := cardRow(nil)
			row.Set(ColPrice, tc.raw)
			card, err := NewCard(row)
			if err != nil {
				t.Fatalf("NewCard() failed: %v", err)
			}
			if card.Price().Known() != tc.wantKnown {
				t.Fatalf("Price().Known() = %v, want %v", card.Price().Known(), tc.wantKnown)
			}
			if tc.wantKnown && !card.Price().Decimal().Equal(decimal.NewFromFloat(tc.want)) {
				t.Errorf("Price() = %v, want %v", card.Price().Decimal(), tc.want)
			}
		})
	}
}

func TestNewCard_LastUpdated(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "timestamp", raw: "2024-03-01 10:22:51", want: true},
		{name: "rfc3339", raw: "2024-03-01T10:22:51Z", want: true},
		{name: "bare date", raw: "2024-03-01", want: true},
		{name: "free text", raw: "last week", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := mustCard(t, map[string]string{ColLastUpdated: tc.raw})
			when, ok := card.LastUpdated()
			if ok != tc.want {
				t.Fatalf("LastUpdated() ok = %v, want %v", ok, tc.want)
			}
			if ok && when.Year() != 2024 {
				t.Errorf("LastUpdated() = %v, want year 2024", when)
			}
		})
	}
}

func TestCard_Features(t *testing.T) {
	card := mustCard(t, map[string]string{
		ColTextless: "textless",
		ColFoil:     "foil",
		ColPromo:    "promo",
	})

	want := []string{"foil", "promo", "textless"}
	got := card.Features()
	if len(got) != len(want) {
		t.Fatalf("Features() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Features()[%d] = %q, want %q (declaration order)", i, got[i], want[i])
		}
	}

	if !card.IsFoil() || !card.IsPromo() || !card.IsTextless() {
		t.Error("presence tests should report the set flags")
	}
	if card.IsSigned() || card.IsMisprint() {
		t.Error("presence tests should not report absent flags")
	}
}

func TestCard_Description(t *testing.T) {
	testCases := []struct {
		name      string
		overrides map[string]string
		want      string
	}{
		{
			name:      "numeric number is zero padded",
			overrides: map[string]string{ColCondition: "Near Mint"},
			want:      "Ajani Goldmane (Magic 2010, #001) | Near Mint",
		},
		{
			name:      "features are titled and appended",
			overrides: map[string]string{ColCondition: "Played", ColFoil: "foil"},
			want:      "Ajani Goldmane (Magic 2010, #001) | Played, Foil",
		},
		{
			name:      "alphanumeric number is kept as is",
			overrides: map[string]string{ColNumber: "P3a", ColCondition: "Mint"},
			want:      "Ajani Goldmane (Magic 2010, #P3a) | Mint",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := mustCard(t, tc.overrides)
			if got := card.Description(); got != tc.want {
				t.Errorf("Description() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCard_String(t *testing.T) {
	card := mustCard(t, map[string]string{ColCount: "3", ColCondition: "Mint"})
	want := "3 x Ajani Goldmane (Magic 2010, #001) | Mint"
	if got := card.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCard_ConditionAdjustedPrice(t *testing.T) {
	testCases := []struct {
		name      string
		condition string
		want      float64
	}{
		{name: "played multiplies by 0.70", condition: "Played", want: 7.00},
		{name: "absent condition multiplies by 1.00", condition: "", want: 10.00},
		{name: "heavily played multiplies by 0.50", condition: "Heavily Played", want: 5.00},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := mustCard(t, map[string]string{ColPrice: "$10.00", ColCondition: tc.condition})
			got := card.ConditionAdjustedPrice()
			if !got.Known() {
				t.Fatal("ConditionAdjustedPrice() should be known")
			}
			if !got.Decimal().Equal(decimal.NewFromFloat(tc.want)) {
				t.Errorf("ConditionAdjustedPrice() = %v, want %v", got.Decimal(), tc.want)
			}
		})
	}
}

func TestCard_Totals(t *testing.T) {
	card := mustCard(t, map[string]string{
		ColCount:     "4",
		ColPrice:     "$2.00",
		ColMyPrice:   "$3.50",
		ColCondition: "Played",
	})

	if got := card.TotalPrice(); !got.Decimal().Equal(decimal.NewFromFloat(8.00)) {
		t.Errorf("TotalPrice() = %v, want 8.00", got.Decimal())
	}
	if got := card.TotalConditionAdjustedPrice(); !got.Decimal().Equal(decimal.NewFromFloat(5.60)) {
		t.Errorf("TotalConditionAdjustedPrice() = %v, want 5.60", got.Decimal())
	}
	if got := card.TotalMyPrice(); !got.Decimal().Equal(decimal.NewFromFloat(14.00)) {
		t.Errorf("TotalMyPrice() = %v, want 14.00", got.Decimal())
	}

	unpriced := mustCard(t, map[string]string{ColCount: "4"})
	if unpriced.TotalPrice().Known() {
		t.Error("TotalPrice() of an unpriced card must stay unknown, not zero")
	}
}

func TestCard_ImageFileName(t *testing.T) {
	card := mustCard(t, map[string]string{ColImageURL: "https://example.org/a/b/fblthp_2019.jpg"})
	if got := card.ImageFileName(); got != "fblthp_2019.jpg" {
		t.Errorf("ImageFileName() = %q, want %q", got, "fblthp_2019.jpg")
	}
	if got := card.ImageFileStem(); got != "fblthp_2019" {
		t.Errorf("ImageFileStem() = %q, want %q", got, "fblthp_2019")
	}
}

func TestCard_Keys(t *testing.T) {
	card := mustCard(t, map[string]string{ColCondition: "Played", ColFoil: "foil"})

	printing := card.Printing()
	if printing.Edition != "Magic 2010" || printing.Foil != "foil" || printing.ImageFile != "ajani-goldmane.jpg" {
		t.Errorf("Printing() = %+v, unexpected fields", printing)
	}

	identity := card.Identity()
	if identity.Printing != printing {
		t.Error("Identity().Printing should equal Printing()")
	}
	if identity.Condition != Played {
		t.Errorf("Identity().Condition = %q, want %q", identity.Condition, Played)
	}

	// condition must not leak into the printing key
	other := mustCard(t, map[string]string{ColCondition: "Poor", ColFoil: "foil"})
	if other.Printing() != printing {
		t.Error("cards differing only by condition must share a printing key")
	}
	if other.Identity() == identity {
		t.Error("cards differing by condition must not share an identity key")
	}
}

func TestCard_Clone(t *testing.T) {
	card := mustCard(t, map[string]string{ColCount: "5", ColPrice: "$1.00"})

	clone := card.CloneCount(-5)
	if clone.Count() != -5 {
		t.Errorf("CloneCount(-5).Count() = %d, want -5", clone.Count())
	}
	if card.Count() != 5 {
		t.Errorf("source count changed to %d after clone", card.Count())
	}
	if clone.Identity() != card.Identity() {
		t.Error("clone must keep the identity key")
	}
	if !clone.Price().Equal(card.Price()) {
		t.Error("clone must keep the price")
	}

	full := card.Clone()
	if full == card {
		t.Error("Clone() must return independent storage")
	}
	if full.Count() != card.Count() {
		t.Errorf("Clone().Count() = %d, want %d", full.Count(), card.Count())
	}
}

func TestParseTimestamp_Zero(t *testing.T) {
	if got := parseTimestamp("not a date"); !got.Equal(time.Time{}) {
		t.Errorf("parseTimestamp() = %v, want zero time", got)
	}
}
