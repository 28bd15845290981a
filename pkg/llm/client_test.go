package llm

import "testing"

func TestOpenAIClientModelName(t *testing.T) {
	client := NewOpenAIClient("test-key")
	if got := client.ModelName(); got != "gpt-4o-mini" {
		t.Errorf("ModelName() = %q, want %q", got, "gpt-4o-mini")
	}
}

func TestAnthropicClientModelName(t *testing.T) {
	client := NewAnthropicClient("test-key")
	if got := client.ModelName(); got != "claude-4.5-haiku" {
		t.Errorf("ModelName() = %q, want %q", got, "claude-4.5-haiku")
	}
}
