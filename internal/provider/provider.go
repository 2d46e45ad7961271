// Package provider implements one caller per translation backend family.
// Each caller builds the provider's request shape, places credentials, and
// extracts the translated text from the provider's response shape.
package provider

import (
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/domain"
)

// Request carries everything a caller needs for one translation round trip.
// Endpoint and Model arrive already resolved and normalized.
type Request struct {
	Text       string
	SourceLang string // "auto" requests detection
	TargetLang string
	APIKey     string
	Endpoint   string
	Model      string
}

type Caller interface {
	Name() string
	Translate(ctx context.Context, req Request) (string, error)
}

type entry struct {
	caller      Caller
	requiresKey bool
}

// Registry maps every provider type in the closed set to its caller and
// required-credential flag. Built once at startup, read-only afterwards.
type Registry struct {
	entries map[domain.ProviderType]entry
}

func NewRegistry(client *resty.Client, logger *zap.Logger) *Registry {
	chat := &ChatCompletionCaller{name: "OpenAI-compatible", http: client, logger: logger}
	azure := &ChatCompletionCaller{name: "Azure OpenAI", http: client, logger: logger, azure: true}
	gemini := &GeminiCaller{logger: logger}
	anthropic := &AnthropicCaller{http: client, logger: logger}
	deeplx := &DeepLXCaller{http: client, logger: logger}
	microsoft := &MicrosoftCaller{http: client, logger: logger}
	google := &GoogleTranslateCaller{http: client, logger: logger}

	return &Registry{
		entries: map[domain.ProviderType]entry{
			domain.ProviderOpenAI:          {caller: chat},
			domain.ProviderDeepSeek:        {caller: chat},
			domain.ProviderQwen:            {caller: chat},
			domain.ProviderOllama:          {caller: chat},
			domain.ProviderCustom:          {caller: chat},
			domain.ProviderAzure:           {caller: azure, requiresKey: true},
			domain.ProviderGemini:          {caller: gemini, requiresKey: true},
			domain.ProviderAnthropic:       {caller: anthropic, requiresKey: true},
			domain.ProviderDeepLX:          {caller: deeplx},
			domain.ProviderMicrosoft:       {caller: microsoft, requiresKey: true},
			domain.ProviderGoogleTranslate: {caller: google, requiresKey: true},
		},
	}
}

// Lookup returns the caller and required-credential flag for a provider
// type. ok is false for types outside the closed set.
func (r *Registry) Lookup(provider domain.ProviderType) (caller Caller, requiresKey bool, ok bool) {
	e, ok := r.entries[provider]
	if !ok {
		return nil, false, false
	}
	return e.caller, e.requiresKey, true
}
