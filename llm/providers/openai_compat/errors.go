package openai_compat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MPASTEAU/harmonizer/llm"
	"github.com/MPASTEAU/harmonizer/llm/internal/transport"
)

func (p *Provider) mapError(err error, raw []byte) error {
	if errors.Is(err, context.Canceled) {
		return &llm.LLMError{Provider: p.name, Kind: llm.ErrKindCanceled, Message: "request canceled", Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &llm.LLMError{Provider: p.name, Kind: llm.ErrKindTimeout, Message: "request deadline exceeded", Cause: err}
	}

	var se *transport.HTTPStatusError
	if errors.As(err, &se) {
		kind := classifyHTTP(se.StatusCode)
		msg, code := parseErrorEnvelope(se.Body)
		if msg == "" {
			msg = http.StatusText(se.StatusCode)
		}
		return &llm.LLMError{
			Provider:     p.name,
			Kind:         kind,
			HTTPStatus:   se.StatusCode,
			ProviderCode: code,
			Message:      msg,
			Raw:          append([]byte(nil), se.Body...),
			Cause:        err,
		}
	}

	return &llm.LLMError{Provider: p.name, Kind: llm.ErrKindUnknown, Message: err.Error(), Raw: raw, Cause: err}
}

func classifyHTTP(status int) llm.ErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return llm.ErrKindAuth
	case http.StatusTooManyRequests:
		return llm.ErrKindRateLimit
	case http.StatusBadRequest:
		return llm.ErrKindBadRequest
	case http.StatusNotFound:
		return llm.ErrKindNotFound
	case http.StatusRequestTimeout:
		return llm.ErrKindTimeout
	default:
		if status >= 500 {
			return llm.ErrKindServer
		}
		return llm.ErrKindUnknown
	}
}

func parseErrorEnvelope(raw []byte) (message string, code string) {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Error == nil {
		return "", ""
	}
	if env.Error.Message != "" {
		message = env.Error.Message
	}
	if env.Error.Code != nil {
		code = stringify(env.Error.Code)
	}
	return message, code
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}
