package ai

import "context"

// Message roles, mirroring the chat-completions wire format.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation sent to the provider.
type Message struct {
	Role    string
	Content string
}

// CompletionProvider is the capability the rest of the system depends on:
// hand the provider a transcript, get the next assistant message back.
type CompletionProvider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
