// Package llm contains the completion backend adapter: the chat message
// types, the typed error taxonomy, the bounded retry policy and the Ollama
// HTTP client.
package llm

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one role-tagged unit of a completion request.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries one completion call's inputs. Format, when
// non-nil, is marshaled into the request body as a structural schema hint
// enabling constrained JSON decoding on backends that support it.
type CompletionRequest struct {
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
	Format      any
}
