package openai_compat

import "github.com/MPASTEAU/harmonizer/llm"

func (p *Provider) mapRequest(req llm.ChatRequest) map[string]any {
	wmessages := make([]wireMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		wmessages = append(wmessages, wireMessage{Role: string(m.Role), Content: m.Content})
	}

	m := map[string]any{
		"model":    req.Model,
		"messages": wmessages,
	}

	if req.MaxTokens != nil {
		m["max_tokens"] = *req.MaxTokens
	}
	if req.Temperature != nil {
		m["temperature"] = *req.Temperature
	}
	if req.TopP != nil {
		m["top_p"] = *req.TopP
	}
	if req.N != nil {
		m["n"] = *req.N
	}
	if len(req.Stop) > 0 {
		m["stop"] = req.Stop
	}

	return m
}
