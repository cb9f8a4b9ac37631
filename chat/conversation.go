// Package chat manages an ordered conversation history on top of a completion
// provider: turns are validated and appended locally, the full history is
// submitted on demand, and the generated assistant turn is folded back in.
package chat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/MPASTEAU/harmonizer/llm"
)

// Conversation owns one message history and mediates calls to a provider.
//
// A Conversation is single-owner: it performs no internal locking and is not
// safe for concurrent use. Callers that need concurrency should use one
// Conversation per logical conversation or synchronize externally.
type Conversation struct {
	id       string
	provider llm.Provider
	logger   *slog.Logger

	model     string
	maxTokens int

	messages []llm.Message
	last     *llm.ChatResponse
}

type Option func(*Conversation)

// WithModel selects the model identifier submitted with every completion call.
func WithModel(model string) Option {
	return func(c *Conversation) {
		c.model = model
	}
}

// WithLogger injects the diagnostic log sink. The default discards records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Conversation) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a Conversation around provider with an empty history.
//
// The generation token budget is resolved once, here, from the model table;
// unrecognized identifiers fall back to DefaultMaxTokens with a warning record
// rather than an error.
func New(provider llm.Provider, opts ...Option) *Conversation {
	c := &Conversation{
		id:       uuid.NewString(),
		provider: provider,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		model:    DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("conversation", c.id)

	mt, ok := MaxTokensFor(c.model)
	if !ok {
		c.logger.Warn("model not recognized, using default max tokens", "model", c.model, "max_tokens", DefaultMaxTokens)
	}
	c.maxTokens = mt

	c.logger.Info("conversation initialized", "model", c.model, "max_tokens", c.maxTokens)
	return c
}

// Model returns the model identifier selected at construction.
func (c *Conversation) Model() string { return c.model }

// MaxTokens returns the token budget resolved at construction.
func (c *Conversation) MaxTokens() int { return c.maxTokens }

// AddMessage validates one turn and appends it to the history.
//
// The role must be user, assistant or system; content must be non-empty after
// trimming. On any violation a *ValidationError is returned and the history is
// left untouched.
func (c *Conversation) AddMessage(role llm.Role, content string) error {
	c.logger.Debug("adding message to history", "role", role, "content", truncate(content, 50))
	if !llm.ValidRole(role) {
		c.logger.Error("invalid role", "role", role)
		return &ValidationError{Message: fmt.Sprintf("invalid role %q: choose user, assistant or system", role)}
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		c.logger.Error("empty content")
		return &ValidationError{Message: "empty content"}
	}

	c.messages = append(c.messages, llm.Message{Role: role, Content: trimmed})
	c.logger.Debug("message added", "total", len(c.messages))
	return nil
}

// Chat submits the full history to the provider and appends the first
// generated choice to it as an assistant turn.
//
// On failure the error is logged and returned, the history is untouched and
// the stored response is unchanged; there is no retry.
func (c *Conversation) Chat(ctx context.Context, opts ...ChatOption) (string, error) {
	cfg := applyChatOptions(opts...)
	c.logger.Info("sending chat completion request",
		"model", c.model,
		"temperature", cfg.temperature,
		"top_p", cfg.topP,
		"n", cfg.n,
		"stop", cfg.stop,
		"messages", len(c.messages),
	)

	req := llm.ChatRequest{
		Model:       c.model,
		Messages:    append([]llm.Message(nil), c.messages...),
		MaxTokens:   &c.maxTokens,
		Temperature: &cfg.temperature,
		TopP:        &cfg.topP,
		N:           &cfg.n,
		Stop:        cfg.stop,
	}

	resp, err := c.provider.Chat(ctx, req)
	if err != nil {
		c.logger.Error("chat completion failed", "err", err)
		return "", err
	}

	text := strings.TrimSpace(resp.FirstText())
	if err := c.AddMessage(llm.RoleAssistant, text); err != nil {
		c.logger.Error("chat completion unusable", "err", err)
		return "", err
	}
	c.last = &resp

	c.logger.Info("chat completion received", "content", truncate(text, 50))
	return text, nil
}

// Reset clears the history and the stored response. Idempotent.
func (c *Conversation) Reset() {
	c.logger.Info("resetting conversation")
	c.messages = nil
	c.last = nil
}

// LastResponse returns the assistant text extracted from the last stored raw
// response. It reads the stored response, not the history tail, so the two can
// diverge if the history is mutated independently.
func (c *Conversation) LastResponse() (string, bool) {
	c.logger.Debug("retrieving last response")
	if c.last == nil {
		c.logger.Warn("no response available")
		return "", false
	}
	return c.last.FirstText(), true
}

// ListModels queries the provider's model catalog and returns identifiers only.
// Failures are logged and returned; nothing is cached.
func (c *Conversation) ListModels(ctx context.Context) ([]string, error) {
	c.logger.Debug("retrieving available models")
	infos, err := c.provider.ListModels(ctx)
	if err != nil {
		c.logger.Error("failed to retrieve models", "err", err)
		return nil, err
	}
	ids := make([]string, 0, len(infos))
	for _, m := range infos {
		ids = append(ids, m.ID)
	}
	c.logger.Info("available models retrieved", "count", len(ids))
	return ids, nil
}

// History returns a copy of the conversation history in insertion order.
func (c *Conversation) History() []llm.Message {
	return append([]llm.Message(nil), c.messages...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
