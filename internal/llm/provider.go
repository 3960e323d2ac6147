package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for gateway interaction.
// Consumers call Generate with a Request and receive text or structured JSON.
type Provider interface {
	// Generate sends a prompt to the model and returns a response.
	// The request's Schema field, when set, instructs the provider to return
	// JSON conforming to that schema. The response Content will be the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// this contains one user message; the tutor passes the full history.
	Messages []Message

	// Model overrides the provider's configured model for this request.
	// Accepts the same friendly aliases as configuration. Empty uses the
	// configured default.
	Model string

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is the raw text.
	Schema *Schema

	// EnableSearch asks the provider to ground the answer with a web search
	// tool and report its sources. Only Gemini supports this; other
	// providers ignore the flag and return no sources.
	EnableSearch bool

	// ThinkingBudget is the token budget for extended reasoning, 0 to
	// disable. Ignored by providers without a native thinking mode.
	ThinkingBudget int

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string

	// Attachments carries inline binary parts (an image or document the
	// student attached). Providers map these to their native inline-data
	// representation.
	Attachments []Attachment
}

// Attachment is one inline binary part of a message.
type Attachment struct {
	MIMEType string
	Data     []byte
	Name     string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (used as schema name for OpenAI,
	// tool name for Anthropic). Kebab-case, e.g. "study-quiz".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response.
	Content json.RawMessage

	// Sources lists web citations when the request enabled search and the
	// provider grounded the answer. Empty otherwise.
	Sources []Source

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Source is a web citation backing a grounded answer.
type Source struct {
	Title string
	URL   string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}
