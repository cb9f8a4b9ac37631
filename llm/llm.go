package llm

import "context"

// Provider is the minimal interface a completion backend must implement.
//
// Implementations are expected to:
// - treat ChatRequest as read-only
// - return an *LLMError (or wrap one) for provider/HTTP errors
// - honor ctx cancellation
type Provider interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
