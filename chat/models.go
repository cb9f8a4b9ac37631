package chat

// DefaultModel is used when no model identifier is supplied at construction.
const DefaultModel = "gpt-4o-mini"

// DefaultMaxTokens is the generation budget for model identifiers missing from
// the table. Unrecognized identifiers are not an error; the fallback is logged
// at warning level so it stays distinguishable from a deliberate choice.
const DefaultMaxTokens = 4096

// maxTokensByModel maps known model identifiers to their generation token
// budget. Read-only at runtime.
var maxTokensByModel = map[string]int{
	"gpt-4o-mini":   16384,
	"gpt-3.5-turbo": 4096,
}

// MaxTokensFor resolves the token budget for model. The second return value
// reports whether the identifier was recognized; on a miss the budget is
// DefaultMaxTokens.
func MaxTokensFor(model string) (int, bool) {
	if mt, ok := maxTokensByModel[model]; ok {
		return mt, true
	}
	return DefaultMaxTokens, false
}
