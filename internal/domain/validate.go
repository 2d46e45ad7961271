package domain

import (
	"fmt"
	"strings"

	"github.com/docuglot/docuglot/internal/constants"
	"github.com/docuglot/docuglot/internal/lang"
	"github.com/docuglot/docuglot/internal/util"
	"github.com/docuglot/docuglot/pkg/errors"
)

// NormalizeRequest validates the raw request and produces the
// fully-populated form consumed uniformly downstream. Language defaults
// ("auto" source, "en" target) are applied here and nowhere else.
func NormalizeRequest(req TranslateRequest) (NormalizedRequest, error) {
	if strings.TrimSpace(req.Text) == "" {
		return NormalizedRequest{}, errors.NewValidationError(
			"Text is required", errors.ReasonMissingText, 400)
	}
	if len([]rune(req.Text)) > constants.RequestLimits.MaxTextLength {
		return NormalizedRequest{}, errors.NewValidationError(
			fmt.Sprintf("Text exceeds the maximum length of %d characters", constants.RequestLimits.MaxTextLength),
			errors.ReasonTextTooLong, 413)
	}

	source := req.SourceLang
	if source == "" {
		source = lang.Auto
	}
	if source != lang.Auto && !lang.IsSupported(source) {
		return NormalizedRequest{}, errors.NewValidationError(
			fmt.Sprintf("Unsupported source language: %s", source),
			errors.ReasonInvalidSourceLang, 400)
	}

	target := req.TargetLang
	if target == "" {
		target = "en"
	}
	if !lang.IsSupported(target) {
		return NormalizedRequest{}, errors.NewValidationError(
			fmt.Sprintf("Unsupported target language: %s", target),
			errors.ReasonInvalidTargetLang, 400)
	}

	hasCustom := req.ProviderType != "" || req.CustomAPIKey != "" || req.CustomBaseURL != ""

	provider := ProviderType(util.Normalize(req.ProviderType))
	if provider == "" {
		// Credentials without an explicit type route to the OpenAI-compatible
		// family with a user-supplied endpoint.
		provider = ProviderCustom
	}
	if !ProviderTypes[provider] {
		return NormalizedRequest{}, errors.NewValidationError(
			fmt.Sprintf("Unknown provider type: %s", req.ProviderType),
			errors.ReasonInvalidProvider, 400)
	}

	return NormalizedRequest{
		Text:              req.Text,
		SourceLang:        source,
		TargetLang:        target,
		Provider:          provider,
		APIKey:            strings.TrimSpace(req.CustomAPIKey),
		BaseURL:           strings.TrimSpace(req.CustomBaseURL),
		Model:             strings.TrimSpace(req.Model),
		HasCustomProvider: hasCustom,
	}, nil
}
