package intent

import (
	"reflect"
	"testing"
)

func TestDeriveGates(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Gates
	}{
		{
			name:  "sector with price ceiling",
			query: "tech stocks under $50",
			want:  Gates{PriceMax: 50, Sectors: []string{"Technology"}},
		},
		{
			name:  "small cap with sector",
			query: "small cap healthcare",
			want:  Gates{MaxMarketCap: 2_000_000_000, Sectors: []string{"Healthcare"}},
		},
		{
			name:  "below phrasing with decimal",
			query: "banks below $25.50",
			want:  Gates{PriceMax: 25.5, Sectors: []string{"Financial Services"}},
		},
		{
			name:  "less than without dollar sign",
			query: "energy stocks less than 30",
			want:  Gates{PriceMax: 30, Sectors: []string{"Energy"}},
		},
		{
			name:  "large cap",
			query: "large cap dividend payers",
			want:  Gates{MinMarketCap: 10_000_000_000},
		},
		{
			name:  "both cap buckets",
			query: "small cap or large cap",
			want:  Gates{MaxMarketCap: 2_000_000_000, MinMarketCap: 10_000_000_000},
		},
		{
			name:  "multiple sectors",
			query: "pharma and software names",
			want:  Gates{Sectors: []string{"Technology", "Healthcare"}},
		},
		{
			name:  "no constraints",
			query: "good long term picks",
			want:  Gates{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveGates(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeriveGates(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestDeriveGates_PositiveValuesOnly(t *testing.T) {
	got := DeriveGates("stocks under $0")
	if got.PriceMax != 0 {
		t.Errorf("PriceMax = %v, want unset for a non-positive ceiling", got.PriceMax)
	}
}
