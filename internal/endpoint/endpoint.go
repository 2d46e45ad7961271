// Package endpoint resolves the concrete URL and model identifier for each
// provider family. Every function here is pure: no I/O, deterministic
// output, and idempotent URL normalization.
package endpoint

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/docuglot/docuglot/internal/constants"
	"github.com/docuglot/docuglot/internal/domain"
)

// defaultBaseURLs holds each provider's default endpoint. An empty value
// means the base URL must be user-supplied.
var defaultBaseURLs = map[domain.ProviderType]string{
	domain.ProviderOpenAI:          "https://api.openai.com/v1/chat/completions",
	domain.ProviderDeepSeek:        "https://api.deepseek.com/v1/chat/completions",
	domain.ProviderQwen:            "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions",
	domain.ProviderOllama:          "http://localhost:11434/v1/chat/completions",
	domain.ProviderAzure:           "",
	domain.ProviderCustom:          "",
	domain.ProviderGemini:          "https://generativelanguage.googleapis.com",
	domain.ProviderAnthropic:       "https://api.anthropic.com/v1/messages",
	domain.ProviderDeepLX:          "",
	domain.ProviderMicrosoft:       "https://api.cognitive.microsofttranslator.com",
	domain.ProviderGoogleTranslate: "https://translation.googleapis.com/language/translate/v2",
}

// defaultModels holds each provider's documented default model. Phrase-based
// APIs (DeepLX, Microsoft, Google) have no model concept.
var defaultModels = map[domain.ProviderType]string{
	domain.ProviderOpenAI:    "gpt-4o-mini",
	domain.ProviderDeepSeek:  "deepseek-chat",
	domain.ProviderQwen:      "qwen-turbo",
	domain.ProviderOllama:    "llama3.2",
	domain.ProviderAzure:     "gpt-4o-mini",
	domain.ProviderGemini:    "gemini-2.0-flash",
	domain.ProviderAnthropic: "claude-3-5-haiku-latest",
}

var versionSuffixRE = regexp.MustCompile(`/v\d+$`)

// ResolveModel returns the trimmed user-requested model when non-empty, else
// the provider default, else the global fallback.
func ResolveModel(provider domain.ProviderType, requested string) string {
	if trimmed := strings.TrimSpace(requested); trimmed != "" {
		return trimmed
	}
	if model, ok := defaultModels[provider]; ok {
		return model
	}
	return constants.LLMConfig.FallbackModel
}

// ResolveBaseURL picks the effective base URL for a provider, falling back
// to the provider default when the user supplied none. Custom providers
// without a URL use the OpenAI endpoint.
func ResolveBaseURL(provider domain.ProviderType, custom string) string {
	if trimmed := strings.TrimSpace(custom); trimmed != "" {
		return trimmed
	}
	if base := defaultBaseURLs[provider]; base != "" {
		return base
	}
	if provider == domain.ProviderCustom {
		return defaultBaseURLs[domain.ProviderOpenAI]
	}
	return ""
}

// NormalizeChatCompletionsURL canonicalizes an OpenAI-compatible base URL to
// its chat-completions endpoint. Idempotent.
func NormalizeChatCompletionsURL(base string) string {
	u := strings.TrimRight(strings.TrimSpace(base), "/")
	switch {
	case strings.HasSuffix(u, "/chat/completions"):
		return u
	case versionSuffixRE.MatchString(u):
		return u + "/chat/completions"
	default:
		return u + "/v1/chat/completions"
	}
}

// NormalizeAnthropicURL canonicalizes an Anthropic base URL to end in a
// /messages path. Idempotent.
func NormalizeAnthropicURL(base string) string {
	u := strings.TrimRight(strings.TrimSpace(base), "/")
	switch {
	case strings.HasSuffix(u, "/messages"):
		return u
	case versionSuffixRE.MatchString(u):
		return u + "/messages"
	default:
		return u + "/v1/messages"
	}
}

// NormalizeDeepLXURL ensures a DeepLX base URL ends in /translate. Idempotent.
func NormalizeDeepLXURL(base string) string {
	u := strings.TrimRight(strings.TrimSpace(base), "/")
	if strings.HasSuffix(u, "/translate") {
		return u
	}
	return u + "/translate"
}

// NormalizeAzureURL builds the Azure OpenAI chat-completions endpoint. When
// the URL already points at a chat-completions path, only the api-version
// query parameter is ensured. Idempotent.
func NormalizeAzureURL(base, model string) string {
	u := strings.TrimRight(strings.TrimSpace(base), "/")
	if strings.Contains(u, "/chat/completions") {
		return ensureAPIVersion(u)
	}
	return u + "/openai/deployments/" + url.PathEscape(model) +
		"/chat/completions?api-version=" + constants.LLMConfig.AzureAPIVersion
}

func ensureAPIVersion(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Get("api-version") == "" {
		query.Set("api-version", constants.LLMConfig.AzureAPIVersion)
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

// Resolve computes the final endpoint for a provider given the optional
// user-supplied base URL and the already-resolved model.
func Resolve(provider domain.ProviderType, customBaseURL, model string) string {
	base := ResolveBaseURL(provider, customBaseURL)
	switch provider {
	case domain.ProviderAzure:
		return NormalizeAzureURL(base, model)
	case domain.ProviderAnthropic:
		return NormalizeAnthropicURL(base)
	case domain.ProviderDeepLX:
		return NormalizeDeepLXURL(base)
	case domain.ProviderGemini, domain.ProviderMicrosoft, domain.ProviderGoogleTranslate:
		return strings.TrimRight(base, "/")
	default:
		return NormalizeChatCompletionsURL(base)
	}
}
