package market

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "FinnHub"
}

func (c *FinnhubClient) Snapshot(symbol string) (*Snapshot, error) {
	quote, _, err := c.client.Quote(context.Background()).Symbol(symbol).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub quote: %w", err)
	}

	s := &Snapshot{Symbol: symbol}

	if quote.C != nil {
		s.Price = float64(*quote.C)
	}
	if quote.D != nil {
		s.Change = float64(*quote.D)
	}
	if quote.Dp != nil {
		s.PercentChange = float64(*quote.Dp)
	}
	if quote.H != nil {
		s.High = float64(*quote.H)
	}
	if quote.L != nil {
		s.Low = float64(*quote.L)
	}
	if quote.O != nil {
		s.Open = float64(*quote.O)
	}
	if quote.Pc != nil {
		s.PrevClose = float64(*quote.Pc)
	}

	profile, _, err := c.client.CompanyProfile2(context.Background()).Symbol(symbol).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub profile: %w", err)
	}

	if profile.Name != nil {
		s.Name = *profile.Name
	}
	if profile.FinnhubIndustry != nil {
		s.Industry = *profile.FinnhubIndustry
	}
	if profile.MarketCapitalization != nil {
		// Finnhub reports market cap in millions.
		s.MarketCap = float64(*profile.MarketCapitalization) * 1_000_000
	}

	return s, nil
}
