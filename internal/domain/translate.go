package domain

// ProviderType identifies a translation backend family for routing.
type ProviderType string

const (
	ProviderOpenAI          ProviderType = "openai"
	ProviderGemini          ProviderType = "gemini"
	ProviderAnthropic       ProviderType = "anthropic"
	ProviderAzure           ProviderType = "azure"
	ProviderOllama          ProviderType = "ollama"
	ProviderDeepSeek        ProviderType = "deepseek"
	ProviderQwen            ProviderType = "qwen"
	ProviderDeepLX          ProviderType = "deeplx"
	ProviderMicrosoft       ProviderType = "microsoft"
	ProviderGoogleTranslate ProviderType = "google-translate"
	ProviderCustom          ProviderType = "custom"
)

// ProviderTypes is the closed set of routable provider identifiers.
var ProviderTypes = map[ProviderType]bool{
	ProviderOpenAI:          true,
	ProviderGemini:          true,
	ProviderAnthropic:       true,
	ProviderAzure:           true,
	ProviderOllama:          true,
	ProviderDeepSeek:        true,
	ProviderQwen:            true,
	ProviderDeepLX:          true,
	ProviderMicrosoft:       true,
	ProviderGoogleTranslate: true,
	ProviderCustom:          true,
}

// Label returns the human-readable provider name used in error messages.
func (p ProviderType) Label() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderGemini:
		return "Gemini"
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderAzure:
		return "Azure OpenAI"
	case ProviderOllama:
		return "Ollama"
	case ProviderDeepSeek:
		return "DeepSeek"
	case ProviderQwen:
		return "Qwen"
	case ProviderDeepLX:
		return "DeepLX"
	case ProviderMicrosoft:
		return "Microsoft Translator"
	case ProviderGoogleTranslate:
		return "Google Cloud Translation"
	case ProviderCustom:
		return "Custom provider"
	default:
		return string(p)
	}
}

// TranslateRequest is the inbound JSON body of the translate endpoint.
// CustomAPIKey travels only within a single request and is never persisted
// or logged raw.
type TranslateRequest struct {
	Text          string `json:"text"`
	SourceLang    string `json:"sourceLang,omitempty"`
	TargetLang    string `json:"targetLang,omitempty"`
	ProviderType  string `json:"providerType,omitempty"`
	CustomAPIKey  string `json:"customApiKey,omitempty"`
	CustomBaseURL string `json:"customBaseUrl,omitempty"`
	Model         string `json:"model,omitempty"`
}

// BatchTranslateRequest is the inbound body of the batch endpoint. Provider
// selection fields are shared by every block.
type BatchTranslateRequest struct {
	Texts         []string `json:"texts"`
	SourceLang    string   `json:"sourceLang,omitempty"`
	TargetLang    string   `json:"targetLang,omitempty"`
	ProviderType  string   `json:"providerType,omitempty"`
	CustomAPIKey  string   `json:"customApiKey,omitempty"`
	CustomBaseURL string   `json:"customBaseUrl,omitempty"`
	Model         string   `json:"model,omitempty"`
}

type TranslateResult struct {
	TranslatedText string `json:"translatedText"`
}

type BatchTranslateResult struct {
	TranslatedTexts []string `json:"translatedTexts"`
}

type ErrorResult struct {
	Error string `json:"error"`
}

// NormalizedRequest is the fully-populated form consumed downstream: language
// defaults applied, provider type resolved to the closed set, credential and
// URL overrides carried through.
type NormalizedRequest struct {
	Text       string
	SourceLang string // "auto" when detection is requested
	TargetLang string
	Provider   ProviderType
	APIKey     string
	BaseURL    string
	Model      string

	// HasCustomProvider is true when the caller supplied any provider
	// selection field; false routes to the system default gateway.
	HasCustomProvider bool
}
