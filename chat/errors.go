package chat

import "errors"

// ValidationError reports a malformed conversation turn rejected before it
// reached the history. It is the only error kind AddMessage produces; remote
// failures surface as *llm.LLMError from Chat and ListModels.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return "chat: " + e.Message }

func AsValidationError(err error) (*ValidationError, bool) {
	var e *ValidationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
