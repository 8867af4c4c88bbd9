package domain

import "context"

// Llm abstracts any chat/LLM provider.
type Llm interface {
	// Complete sends an ordered conversation and returns the model's reply text.
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	SystemRole    Role = "system"
	UserRole      Role = "user"
	AssistantRole Role = "assistant"
)

// NewConversation builds the two-message prompt sent on every dispatch:
// the persona's system instruction first, the user's text second, both
// verbatim. The order is fixed.
func NewConversation(persona Persona, userText string) []ChatMessage {
	return []ChatMessage{
		{Role: SystemRole, Content: persona.Instruction()},
		{Role: UserRole, Content: userText},
	}
}
