package domain

// Role values understood by the external text-generation API.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PromptMessage is one turn of an upstream text-generation request.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Prompt is a complete request to the external text-generation API: a persona
// system instruction, the ordered message list, and fixed sampling settings.
// The core depends only on this shape, not on any specific vendor.
type Prompt struct {
	System      string
	Messages    []PromptMessage
	MaxTokens   int
	Temperature float64
}
