// Package llm wraps the external text-generation capability behind a
// single Provider interface with retry, request logging, and optional
// structured-output validation. The engine never talks to a vendor SDK
// directly; it builds a Provider through NewProvider and injects it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the text-generation collaborator contract. A call may be
// slow or fail outright; callers own the timeout via ctx and must not
// hold store state locked while a call is in flight.
type Provider interface {
	// Generate sends a prompt and returns the model output. When
	// req.Schema is set the provider requests structured output and
	// validates the result against the schema; when nil, Content is
	// whatever text the model produced, with no format guarantee.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Engine calls are single-turn: one
	// user message carrying the full prompt.
	Messages []Message

	// Schema, when set, asks the provider for JSON conforming to it.
	// Providers that support native structured output use it; the
	// response is schema-validated either way. Nil means free text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model output plus accounting.
type Response struct {
	// Content is the generated output. Schema-validated JSON when a
	// schema was requested and honored; otherwise raw text bytes.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
