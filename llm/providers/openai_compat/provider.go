// Package openai_compat implements llm.Provider against OpenAI-compatible
// HTTP endpoints (chat completions and the model catalog).
package openai_compat

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MPASTEAU/harmonizer/llm"
	"github.com/MPASTEAU/harmonizer/llm/internal/transport"
)

type Provider struct {
	name string

	apiKey     string
	chatPath   string
	modelsPath string

	tr *transport.Client
}

type Option func(*Provider) error

func New(apiKey string, opts ...Option) (*Provider, error) {
	tr, err := transport.New("https://api.openai.com", nil)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		name:       "openai_compat",
		apiKey:     apiKey,
		chatPath:   "/v1/chat/completions",
		modelsPath: "/v1/models",
		tr:         tr,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.tr == nil {
		return nil, errors.New("openai_compat: nil transport")
	}
	if p.tr.Logger == nil {
		p.tr.Logger = slog.Default()
	}

	return p, nil
}

func WithProviderName(name string) Option {
	return func(p *Provider) error {
		p.name = name
		return nil
	}
}

func WithBaseURL(baseURL string) Option {
	return func(p *Provider) error {
		tr, err := transport.New(baseURL, p.tr.HTTPClient)
		if err != nil {
			return err
		}
		tr.DefaultHeaders = p.tr.DefaultHeaders.Clone()
		tr.UserAgent = p.tr.UserAgent
		tr.Logger = p.tr.Logger
		p.tr = tr
		return nil
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) error {
		p.tr.HTTPClient = c
		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(p *Provider) error {
		p.tr.UserAgent = ua
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) error {
		if logger != nil {
			p.tr.Logger = logger
		}
		return nil
	}
}

func WithDefaultHeader(key, value string) Option {
	return func(p *Provider) error {
		p.tr.DefaultHeaders.Add(key, value)
		return nil
	}
}

func WithChatCompletionsPath(path string) Option {
	return func(p *Provider) error {
		p.chatPath = path
		return nil
	}
}

func WithModelsPath(path string) Option {
	return func(p *Provider) error {
		p.modelsPath = path
		return nil
	}
}

func (p *Provider) Chat(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
	if err := p.validateRequest(req); err != nil {
		return llm.ChatResponse{}, err
	}

	wreq := p.mapRequest(req)
	hdr := p.defaultHeaders("application/json")

	_, raw, err := p.tr.DoJSON(ctx, http.MethodPost, p.chatPath, hdr, wreq)
	if err != nil {
		return llm.ChatResponse{}, p.mapError(err, raw)
	}

	var wresp chatCompletionResponse
	if err := json.Unmarshal(raw, &wresp); err != nil {
		return llm.ChatResponse{}, &llm.LLMError{Provider: p.name, Kind: llm.ErrKindParse, Message: "failed to decode response", Raw: raw, Cause: err}
	}

	out := p.mapResponse(wresp)
	out.RawJSON = append([]byte(nil), raw...)
	return out, nil
}

func (p *Provider) ListModels(ctx context.Context) ([]llm.ModelInfo, error) {
	hdr := p.defaultHeaders("application/json")

	_, raw, err := p.tr.DoJSON(ctx, http.MethodGet, p.modelsPath, hdr, nil)
	if err != nil {
		return nil, p.mapError(err, raw)
	}

	var wresp modelsListResponse
	if err := json.Unmarshal(raw, &wresp); err != nil {
		return nil, &llm.LLMError{Provider: p.name, Kind: llm.ErrKindParse, Message: "failed to decode models list", Raw: raw, Cause: err}
	}

	out := make([]llm.ModelInfo, 0, len(wresp.Data))
	for _, m := range wresp.Data {
		out = append(out, llm.ModelInfo{
			ID:      m.ID,
			OwnedBy: m.OwnedBy,
			Created: m.CreatedTime(),
		})
	}
	return out, nil
}

func (p *Provider) defaultHeaders(accept string) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	if accept != "" {
		h.Set("Accept", accept)
	}
	if p.apiKey != "" {
		h.Set("Authorization", "Bearer "+p.apiKey)
	}
	return h
}

func (p *Provider) validateRequest(req llm.ChatRequest) error {
	if req.Model == "" {
		return errors.New("llm: model is required")
	}
	return nil
}
