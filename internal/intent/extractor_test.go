package intent

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"stockscreen/pkg/llm"
)

type fakeChatClient struct {
	reply string
	err   error

	calls   int
	lastReq llm.ChatRequest
}

func (f *fakeChatClient) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	f.calls++
	f.lastReq = req
	return f.reply, f.err
}

func TestExtract_ModelPath(t *testing.T) {
	chat := &fakeChatClient{reply: "growth, aggressive, 10"}
	e := NewExtractor(chat)

	got := e.Extract(context.Background(), "tech stocks under $50")

	if got.Objective != ObjectiveGrowth {
		t.Errorf("objective = %q, want %q", got.Objective, ObjectiveGrowth)
	}
	if got.RiskTolerance != RiskAggressive {
		t.Errorf("risk = %q, want %q", got.RiskTolerance, RiskAggressive)
	}
	if got.HorizonYears != 10 {
		t.Errorf("horizon = %d, want 10", got.HorizonYears)
	}
	if got.Source != SourceModel {
		t.Errorf("source = %q, want %q", got.Source, SourceModel)
	}

	wantWeights := StyleWeights(ObjectiveGrowth, RiskAggressive)
	if !reflect.DeepEqual(got.StyleWeights, wantWeights) {
		t.Errorf("style weights = %v, want %v", got.StyleWeights, wantWeights)
	}

	// Gates come from the raw query, not the model reply.
	wantGates := Gates{PriceMax: 50, Sectors: []string{"Technology"}}
	if !reflect.DeepEqual(got.Gates, wantGates) {
		t.Errorf("gates = %+v, want %+v", got.Gates, wantGates)
	}
}

func TestExtract_RequestShape(t *testing.T) {
	chat := &fakeChatClient{reply: "balanced, moderate, 5"}
	e := NewExtractor(chat)

	e.Extract(context.Background(), "some stocks")

	req := chat.lastReq
	if req.Temperature != 0.1 {
		t.Errorf("temperature = %v, want 0.1", req.Temperature)
	}
	if req.MaxTokens != 24 {
		t.Errorf("max tokens = %d, want 24", req.MaxTokens)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleSystem {
		t.Errorf("first message role = %q, want system", req.Messages[0].Role)
	}
	if req.Messages[1].Content != "some stocks" {
		t.Errorf("user message = %q, want raw query", req.Messages[1].Content)
	}
}

func TestExtract_FencedReply(t *testing.T) {
	chat := &fakeChatClient{reply: "```\nincome, conservative, 20\n```"}
	e := NewExtractor(chat)

	got := e.Extract(context.Background(), "dividend stocks")

	if got.Objective != ObjectiveIncome || got.RiskTolerance != RiskConservative || got.HorizonYears != 20 {
		t.Errorf("got %+v, want income/conservative/20", got)
	}
}

func TestExtract_MalformedReplyFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"prose without commas", "I think you want growth stocks"},
		{"two tokens", "growth, aggressive"},
		{"empty reply", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &fakeChatClient{reply: tt.reply}
			e := NewExtractor(chat)

			got := e.Extract(context.Background(), "anything")

			if !reflect.DeepEqual(got, DefaultIntent()) {
				t.Errorf("got %+v, want the default intent", got)
			}
		})
	}
}

func TestExtract_ModelErrorFallsBack(t *testing.T) {
	chat := &fakeChatClient{err: errors.New("timeout")}
	e := NewExtractor(chat)

	got := e.Extract(context.Background(), "growth stocks")

	if got.Source != SourceFallback {
		t.Errorf("source = %q, want %q", got.Source, SourceFallback)
	}
	if !reflect.DeepEqual(got, DefaultIntent()) {
		t.Errorf("got %+v, want the default intent", got)
	}
}

func TestExtract_HorizonClamping(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  int
	}{
		{"zero clamps to minimum", "balanced, moderate, 0", 1},
		{"huge value clamps to maximum", "balanced, moderate, 999", 50},
		{"unparsable defaults to five", "balanced, moderate, soon", 5},
		{"years suffix accepted", "balanced, moderate, 10 years", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &fakeChatClient{reply: tt.reply}
			e := NewExtractor(chat)

			got := e.Extract(context.Background(), "anything")

			if got.HorizonYears != tt.want {
				t.Errorf("horizon = %d, want %d", got.HorizonYears, tt.want)
			}
			if got.Source != SourceModel {
				t.Errorf("source = %q, want %q", got.Source, SourceModel)
			}
		})
	}
}
