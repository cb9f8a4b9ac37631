package openai_compat

import "github.com/MPASTEAU/harmonizer/llm"

func (p *Provider) mapResponse(r chatCompletionResponse) llm.ChatResponse {
	out := llm.ChatResponse{
		ID:      r.ID,
		Model:   r.Model,
		Created: r.CreatedTime(),
		Choices: make([]llm.ChatChoice, 0, len(r.Choices)),
	}
	if r.Usage != nil {
		out.Usage = &llm.Usage{
			PromptTokens:     r.Usage.PromptTokens,
			CompletionTokens: r.Usage.CompletionTokens,
			TotalTokens:      r.Usage.TotalTokens,
		}
	}

	for _, c := range r.Choices {
		msg := llm.Message{Role: llm.RoleAssistant, Content: c.Message.Content}
		if c.Message.Role != "" {
			msg.Role = llm.Role(c.Message.Role)
		}
		out.Choices = append(out.Choices, llm.ChatChoice{
			Index:        c.Index,
			Message:      msg,
			FinishReason: mapFinishReason(c.FinishReason),
		})
	}
	return out
}

func mapFinishReason(fr string) llm.FinishReason {
	switch fr {
	case "stop":
		return llm.FinishReasonStop
	case "length":
		return llm.FinishReasonLength
	case "":
		return ""
	default:
		return llm.FinishReasonUnknown
	}
}
