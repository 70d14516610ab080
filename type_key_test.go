package deckbox

import "testing"

func TestPrintingKey_Compare(t *testing.T) {
	base := PrintingKey{Edition: "Magic 2010", Number: "1", Name: "Ajani Goldmane", Language: "English"}

	testCases := []struct {
		name  string
		other PrintingKey
		want  int // sign of base.Compare(other)
	}{
		{name: "equal", other: base, want: 0},
		{name: "earlier edition sorts first", other: PrintingKey{Edition: "Zendikar", Number: "1", Name: "Ajani Goldmane", Language: "English"}, want: -1},
		{name: "number breaks edition ties", other: PrintingKey{Edition: "Magic 2010", Number: "2", Name: "Ajani Goldmane", Language: "English"}, want: -1},
		{name: "foil breaks full ties", other: PrintingKey{Edition: "Magic 2010", Number: "1", Name: "Ajani Goldmane", Language: "English", Foil: "foil"}, want: -1},
		{name: "image file participates", other: PrintingKey{Edition: "Magic 2010", Number: "1", Name: "Ajani Goldmane", Language: "English", ImageFile: "alt-art.jpg"}, want: -1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := base.Compare(tc.other)
			if sign(got) != tc.want {
				t.Errorf("Compare() = %d, want sign %d", got, tc.want)
			}
			if sign(tc.other.Compare(base)) != -tc.want {
				t.Errorf("Compare() is not antisymmetric")
			}
		})
	}
}

func TestIdentityKey_Compare(t *testing.T) {
	printing := PrintingKey{Edition: "Magic 2010", Number: "1", Name: "Ajani Goldmane"}
	mint := IdentityKey{Printing: printing, Condition: Mint}
	played := IdentityKey{Printing: printing, Condition: Played}

	if mint.Compare(mint) != 0 {
		t.Error("identical keys should compare equal")
	}
	if sign(mint.Compare(played)) != -1 {
		t.Error("condition should break printing ties")
	}

	otherPrinting := IdentityKey{
		Printing:  PrintingKey{Edition: "Zendikar", Number: "1", Name: "Ajani Goldmane"},
		Condition: Mint,
	}
	if sign(mint.Compare(otherPrinting)) != -1 {
		t.Error("printing should dominate condition")
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
