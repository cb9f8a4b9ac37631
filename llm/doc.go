// Package llm provides the canonical domain model for chat completions.
//
// Design goals:
//   - Stable domain model: callers build requests using canonical types (ChatRequest, Message).
//   - Providers are thin wire bindings: implementations live under llm/providers and map
//     between the canonical model and each endpoint's JSON format.
//   - Classified errors: every remote failure surfaces as an *LLMError with a stable Kind,
//     suitable for structured logging.
package llm
