package llm

import "context"

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type ChatMessage struct {
	Role    Role
	Content string
}

type ChatRequest struct {
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// ChatClient is the single capability the intent pipeline needs from a
// hosted model: role-tagged messages in, free text out.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}
