package constants

import "time"

var RequestLimits = struct {
	MaxTextLength  int
	MaxBatchBlocks int
}{
	MaxTextLength:  50000,
	MaxBatchBlocks: 100,
}

var HTTPTimeouts = struct {
	Provider    time.Duration
	Read        time.Duration
	Write       time.Duration
	IdleTimeout time.Duration
	Shutdown    time.Duration
}{
	Provider:    60 * time.Second,
	Read:        30 * time.Second,
	Write:       180 * time.Second, // batch requests fan out many upstream calls
	IdleTimeout: 120 * time.Second,
	Shutdown:    10 * time.Second,
}

var Gateway = struct {
	DefaultBaseURL string
	DefaultModel   string
}{
	DefaultBaseURL: "https://openrouter.ai/api/v1",
	DefaultModel:   "google/gemini-3-flash-preview",
}

var LLMConfig = struct {
	Temperature        float64
	AnthropicVersion   string
	AnthropicMaxTokens int
	AzureAPIVersion    string
	FallbackModel      string
}{
	Temperature:        0.2,
	AnthropicVersion:   "2023-06-01",
	AnthropicMaxTokens: 4096,
	AzureAPIVersion:    "2024-02-15-preview",
	FallbackModel:      "gpt-4o-mini",
}

var BatchConfig = struct {
	MaxConcurrency int
	MinBlockRunes  int
}{
	MaxConcurrency: 4,
	MinBlockRunes:  2,
}
