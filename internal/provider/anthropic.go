package provider

import (
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/constants"
	"github.com/docuglot/docuglot/internal/prompt"
	"github.com/docuglot/docuglot/internal/util"
	"github.com/docuglot/docuglot/pkg/errors"
)

// AnthropicCaller speaks the Anthropic messages API: key in the x-api-key
// header, fixed anthropic-version, system prompt as a top-level field.
type AnthropicCaller struct {
	http   *resty.Client
	logger *zap.Logger
}

func (a *AnthropicCaller) Name() string {
	return "Anthropic"
}

func (a *AnthropicCaller) Translate(ctx context.Context, req Request) (string, error) {
	body := map[string]any{
		"model":      req.Model,
		"max_tokens": constants.LLMConfig.AnthropicMaxTokens,
		"system":     prompt.System(req.SourceLang, req.TargetLang),
		"messages": []map[string]string{
			{"role": "user", "content": req.Text},
		},
	}

	resp, err := a.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", req.APIKey).
		SetHeader("anthropic-version", constants.LLMConfig.AnthropicVersion).
		SetBody(body).
		Post(req.Endpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		a.logger.Warn("Anthropic request failed",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", util.TruncateString(resp.String(), 500)),
			zap.String("api_key", util.RedactKey(req.APIKey)),
		)
		return "", errors.NewProviderHTTPError(
			errors.ProviderFailedMessage(resp.StatusCode()), resp.StatusCode(), nil)
	}

	return ExtractAnthropicText(resp.Body())
}
