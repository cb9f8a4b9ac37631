package llm

import (
	"errors"
	"fmt"
	"testing"
)

func TestLLMError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *LLMError
		want string
	}{
		{
			name: "with provider and message",
			err:  &LLMError{Provider: "openai_compat", Message: "boom"},
			want: "llm openai_compat: boom",
		},
		{
			name: "message falls back to kind",
			err:  &LLMError{Provider: "openai_compat", Kind: ErrKindRateLimit},
			want: "llm openai_compat: rate_limit",
		},
		{
			name: "no provider",
			err:  &LLMError{Message: "boom"},
			want: "llm: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error()=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsLLMError(t *testing.T) {
	cause := errors.New("underlying")
	le := &LLMError{Kind: ErrKindServer, Cause: cause}
	wrapped := fmt.Errorf("call failed: %w", le)

	got, ok := AsLLMError(wrapped)
	if !ok || got.Kind != ErrKindServer {
		t.Fatalf("AsLLMError()=%v, %v", got, ok)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("Unwrap chain broken")
	}

	if _, ok := AsLLMError(errors.New("plain")); ok {
		t.Fatal("AsLLMError() matched a plain error")
	}
}
