package screener

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stockscreen/internal/intent"
)

// Stock is one scored candidate returned by the screening engine.
type Stock struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	MarketCap     float64 `json:"market_cap"`
	Price         float64 `json:"price"`
	PERatio       float64 `json:"pe_ratio"`
	DividendYield float64 `json:"dividend_yield"`
	OverallScore  float64 `json:"overall_score"`
}

// The engine reads the constraints under the "filters" key.
type screenRequest struct {
	StyleWeights map[intent.Style]int `json:"style_weights"`
	Filters      intent.Gates         `json:"filters"`
}

type screenResponse struct {
	Success    bool    `json:"success"`
	Data       []Stock `json:"data"`
	TotalFound int     `json:"total_found"`
	Error      string  `json:"error"`
}

// Client talks to the screening engine, which accepts the Intent's
// weights and gates and nothing else.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Screen(in intent.Intent) ([]Stock, error) {
	body, err := json.Marshal(screenRequest{
		StyleWeights: in.StyleWeights,
		Filters:      in.Gates,
	})
	if err != nil {
		return nil, fmt.Errorf("screener encode: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/screen", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("screener request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("screener status %d", resp.StatusCode)
	}

	var raw screenResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("screener decode: %w", err)
	}

	if !raw.Success {
		return nil, fmt.Errorf("screener error: %s", raw.Error)
	}

	return raw.Data, nil
}
