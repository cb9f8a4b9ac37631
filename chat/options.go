package chat

import "slices"

// Default sampling parameters applied when the caller sets nothing.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 1.0
	DefaultN           = 1
)

// ChatOption adjusts the sampling parameters of a single Chat call.
type ChatOption func(*chatConfig)

type chatConfig struct {
	temperature float64
	topP        float64
	n           int
	stop        []string
}

func applyChatOptions(opts ...ChatOption) chatConfig {
	cfg := chatConfig{
		temperature: DefaultTemperature,
		topP:        DefaultTopP,
		n:           DefaultN,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithTemperature sets the sampling temperature. Lower values make the result
// more deterministic.
func WithTemperature(v float64) ChatOption {
	return func(c *chatConfig) {
		c.temperature = v
	}
}

// WithTopP sets the nucleus sampling threshold.
func WithTopP(v float64) ChatOption {
	return func(c *chatConfig) {
		c.topP = v
	}
}

// WithN sets the number of candidate completions to generate. Only the first
// candidate is folded back into the history.
func WithN(n int) ChatOption {
	return func(c *chatConfig) {
		c.n = n
	}
}

// WithStop sets up to four sequences where the endpoint stops generating.
func WithStop(stop ...string) ChatOption {
	return func(c *chatConfig) {
		c.stop = slices.Clone(stop)
	}
}
