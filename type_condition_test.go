package deckbox

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCondition_Multiplier(t *testing.T) {
	testCases := []struct {
		condition Condition
		want      string
	}{
		{condition: Ungraded, want: "1"},
		{condition: Mint, want: "1"},
		{condition: NearMint, want: "1"},
		{condition: LightlyPlayed, want: "0.85"},
		{condition: Played, want: "0.7"},
		{condition: HeavilyPlayed, want: "0.5"},
		{condition: Poor, want: "0.25"},
		{condition: Condition("Shredded"), want: "1"}, // outside the closed set
	}
	for _, tc := range testCases {
		t.Run(string(tc.condition), func(t *testing.T) {
			want, _ := decimal.NewFromString(tc.want)
			if got := tc.condition.Multiplier(); !got.Equal(want) {
				t.Errorf("Multiplier(%q) = %v, want %v", tc.condition, got, want)
			}
		})
	}
}

func TestParseCondition(t *testing.T) {
	for _, valid := range []string{"", "Mint", "Near Mint", "Good (Lightly Played)", "Played", "Heavily Played", "Poor"} {
		if _, err := ParseCondition(valid); err != nil {
			t.Errorf("ParseCondition(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseCondition("Pristine"); err == nil {
		t.Error("ParseCondition should reject grades outside the closed set")
	}
}
