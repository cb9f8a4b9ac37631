package llm

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ValidRole reports whether r is one of the three conversation roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

type FinishReason string

const (
	FinishReasonStop    FinishReason = "stop"
	FinishReasonLength  FinishReason = "length"
	FinishReasonUnknown FinishReason = "unknown"
)

// Message is a canonical chat message: one conversation turn attributed to a role.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func System(text string) Message    { return Message{Role: RoleSystem, Content: text} }
func User(text string) Message      { return Message{Role: RoleUser, Content: text} }
func Assistant(text string) Message { return Message{Role: RoleAssistant, Content: text} }

// ChatRequest carries the full message history plus sampling parameters for one
// completion call. Pointer fields are omitted from the wire request when nil so
// the endpoint applies its own defaults.
type ChatRequest struct {
	Model    string
	Messages []Message

	MaxTokens   *int
	Temperature *float64
	TopP        *float64
	N           *int
	Stop        []string
}

func (r ChatRequest) Clone() ChatRequest {
	out := r
	out.Messages = append([]Message(nil), r.Messages...)
	if r.Stop != nil {
		out.Stop = append([]string(nil), r.Stop...)
	}
	if r.MaxTokens != nil {
		v := *r.MaxTokens
		out.MaxTokens = &v
	}
	if r.Temperature != nil {
		v := *r.Temperature
		out.Temperature = &v
	}
	if r.TopP != nil {
		v := *r.TopP
		out.TopP = &v
	}
	if r.N != nil {
		v := *r.N
		out.N = &v
	}
	return out
}

type ChatChoice struct {
	Index        int
	Message      Message
	FinishReason FinishReason
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type ChatResponse struct {
	ID      string
	Model   string
	Created time.Time

	Choices []ChatChoice
	Usage   *Usage

	// RawJSON is the undecoded endpoint response body.
	RawJSON json.RawMessage
}

// FirstText returns the content of the first choice, or "" when the response
// carries no choices.
func (r ChatResponse) FirstText() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// ModelInfo is one entry of the remote model catalog.
type ModelInfo struct {
	ID      string
	OwnedBy string
	Created time.Time
}
