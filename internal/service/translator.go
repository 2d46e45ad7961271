// Package service contains the dispatcher: the routing decision from a
// normalized translation request to a provider caller or the default
// gateway.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/domain"
	"github.com/docuglot/docuglot/internal/endpoint"
	"github.com/docuglot/docuglot/internal/gateway"
	"github.com/docuglot/docuglot/internal/provider"
	"github.com/docuglot/docuglot/pkg/errors"
)

// DefaultGateway is the fallback backend used when a request carries no
// custom provider configuration.
type DefaultGateway interface {
	Configured() bool
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type Translator struct {
	registry *provider.Registry
	gateway  DefaultGateway
	logger   *zap.Logger
}

func NewTranslator(registry *provider.Registry, gw DefaultGateway, logger *zap.Logger) *Translator {
	return &Translator{
		registry: registry,
		gateway:  gw,
		logger:   logger,
	}
}

var _ DefaultGateway = (*gateway.Client)(nil)

// Translate validates and normalizes the request, routes it to the matching
// provider caller (or the default gateway), and returns the translated text.
// Nothing is retried here; a failed provider call surfaces immediately.
func (t *Translator) Translate(ctx context.Context, req domain.TranslateRequest) (string, error) {
	normalized, err := domain.NormalizeRequest(req)
	if err != nil {
		return "", err
	}

	if !normalized.HasCustomProvider {
		t.logger.Debug("Routing to default gateway",
			zap.String("source", normalized.SourceLang),
			zap.String("target", normalized.TargetLang),
			zap.Int("text_len", len(normalized.Text)),
		)
		return t.gateway.Translate(ctx, normalized.Text, normalized.SourceLang, normalized.TargetLang)
	}

	caller, requiresKey, ok := t.registry.Lookup(normalized.Provider)
	if !ok {
		return "", errors.NewValidationError(
			"Unknown provider type: "+string(normalized.Provider),
			errors.ReasonInvalidProvider, 400)
	}
	if requiresKey && normalized.APIKey == "" {
		return "", errors.NewMissingCredentialError(normalized.Provider.Label())
	}

	model := endpoint.ResolveModel(normalized.Provider, normalized.Model)
	resolvedURL := endpoint.Resolve(normalized.Provider, normalized.BaseURL, model)

	t.logger.Debug("Routing to provider",
		zap.String("provider", string(normalized.Provider)),
		zap.String("caller", caller.Name()),
		zap.String("model", model),
		zap.String("endpoint", resolvedURL),
		zap.Int("text_len", len(normalized.Text)),
	)

	return caller.Translate(ctx, provider.Request{
		Text:       normalized.Text,
		SourceLang: normalized.SourceLang,
		TargetLang: normalized.TargetLang,
		APIKey:     normalized.APIKey,
		Endpoint:   resolvedURL,
		Model:      model,
	})
}

// GatewayConfigured reports whether the default gateway holds a credential,
// surfaced by the health endpoint.
func (t *Translator) GatewayConfigured() bool {
	return t.gateway.Configured()
}
