package intent

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"stockscreen/pkg/llm"
)

const (
	extractTemperature = 0.1
	extractMaxTokens   = 24

	minHorizonYears = 1
	maxHorizonYears = 50
)

// The model answers with three comma-separated tokens, not JSON, so the
// reply fits the small token ceiling.
const extractSystemPrompt = `You convert stock screening requests into three comma-separated values.

Respond with exactly: objective, risk tolerance, horizon in years. No other text.
- objective: growth, income, balanced, preservation, or speculation
- risk tolerance: conservative, moderate, aggressive, or very_aggressive
- horizon: whole number of years

Examples:
Query: undervalued dividend stocks for retirement
Answer: income, conservative, 20

Query: high growth tech stocks
Answer: growth, aggressive, 5

Query: safe blue chip companies to hold forever
Answer: preservation, conservative, 30

Query: quick momentum plays
Answer: speculation, very_aggressive, 1`

// Extractor turns a raw query into an Intent by delegating the
// objective/risk/horizon call to a chat model and deriving everything
// else locally.
type Extractor struct {
	chat llm.ChatClient
}

func NewExtractor(chat llm.ChatClient) *Extractor {
	return &Extractor{chat: chat}
}

// Extract never fails: any model error or contract violation resolves to
// the default Intent with source set to fallback.
func (e *Extractor) Extract(ctx context.Context, query string) Intent {
	reply, err := e.chat.Complete(ctx, llm.ChatRequest{
		Messages: []llm.ChatMessage{
			{Role: llm.RoleSystem, Content: extractSystemPrompt},
			{Role: llm.RoleUser, Content: query},
		},
		Temperature: extractTemperature,
		MaxTokens:   extractMaxTokens,
	})
	if err != nil {
		slog.Error("intent extraction failed, using fallback", "error", err)
		return DefaultIntent()
	}

	tokens := splitReply(reply)
	if len(tokens) < 3 {
		slog.Warn("malformed model reply, using fallback", "reply", reply)
		return DefaultIntent()
	}

	objective := MapObjective(tokens[0])
	risk := MapRiskTolerance(tokens[1])
	horizon := clampHorizon(parseHorizon(tokens[2]))

	return Intent{
		Objective:     objective,
		RiskTolerance: risk,
		HorizonYears:  horizon,
		StyleWeights:  StyleWeights(objective, risk),
		Gates:         DeriveGates(query),
		Source:        SourceModel,
	}
}

func splitReply(reply string) []string {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.ToLower(strings.TrimSpace(cleaned))

	parts := strings.Split(cleaned, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.TrimSpace(p))
	}
	return tokens
}

func parseHorizon(token string) int {
	cleaned := strings.TrimSuffix(strings.TrimSpace(token), ".")
	cleaned = strings.TrimSuffix(cleaned, " years")
	cleaned = strings.TrimSuffix(cleaned, " year")

	years, err := strconv.Atoi(cleaned)
	if err != nil {
		return 5
	}
	return years
}

func clampHorizon(years int) int {
	if years < minHorizonYears {
		return minHorizonYears
	}
	if years > maxHorizonYears {
		return maxHorizonYears
	}
	return years
}
