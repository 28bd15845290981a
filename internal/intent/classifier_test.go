package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Route
	}{
		{
			name:  "known ticker",
			query: "AAPL",
			want:  RouteTicker,
		},
		{
			name:  "lowercase ticker",
			query: "nvda",
			want:  RouteTicker,
		},
		{
			name:  "ticker with analysis keyword",
			query: "AAPL analysis",
			want:  RouteTicker,
		},
		{
			name:  "unknown short alphabetic string",
			query: "XYZQ",
			want:  RouteTicker,
		},
		{
			name:  "intent vocabulary",
			query: "undervalued dividend stocks",
			want:  RouteIntent,
		},
		{
			name:  "growth query",
			query: "find growth stocks",
			want:  RouteIntent,
		},
		{
			name:  "long sentence without vocabulary",
			query: "what should I look at this morning?",
			want:  RouteIntent,
		},
		{
			name:  "surrounding whitespace",
			query: "  tsla  ",
			want:  RouteTicker,
		},
		{
			name:  "short non-alphabetic input",
			query: "$50?",
			want:  RouteIntent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.query)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestTickerSymbol(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"AAPL", "AAPL"},
		{"aapl analysis", "AAPL"},
		{"  msft report ", "MSFT"},
		{"", ""},
	}

	for _, tt := range tests {
		got := TickerSymbol(tt.query)
		if got != tt.want {
			t.Errorf("TickerSymbol(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}
