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

// ChatCompletionCaller serves every provider speaking the /v1/chat/completions
// shape: OpenAI, DeepSeek, Qwen, Ollama, Azure OpenAI and custom endpoints.
// A missing API key is tolerated for local and self-hosted gateways.
type ChatCompletionCaller struct {
	name   string
	http   *resty.Client
	logger *zap.Logger
	azure  bool
}

func (c *ChatCompletionCaller) Name() string {
	return c.name
}

func (c *ChatCompletionCaller) Translate(ctx context.Context, req Request) (string, error) {
	body := map[string]any{
		"model": req.Model,
		"messages": []map[string]string{
			{"role": "system", "content": prompt.System(req.SourceLang, req.TargetLang)},
			{"role": "user", "content": req.Text},
		},
		"temperature": constants.LLMConfig.Temperature,
	}

	r := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if req.APIKey != "" {
		r.SetHeader("Authorization", "Bearer "+req.APIKey)
		if c.azure {
			r.SetHeader("api-key", req.APIKey)
		}
	}

	resp, err := r.Post(req.Endpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		c.logger.Warn("Chat completion request failed",
			zap.String("caller", c.name),
			zap.String("endpoint", req.Endpoint),
			zap.Int("status", resp.StatusCode()),
			zap.String("body", util.TruncateString(resp.String(), 500)),
			zap.String("api_key", util.RedactKey(req.APIKey)),
		)
		return "", mapChatHTTPStatus(resp.StatusCode())
	}

	return ExtractChatText(resp.Body())
}

// mapChatHTTPStatus applies the OpenAI-compatible family's status mapping:
// dedicated messages for rate limiting and exhausted quota, generic
// otherwise.
func mapChatHTTPStatus(status int) error {
	switch status {
	case 429:
		return errors.NewProviderHTTPError(errors.MsgRateLimited, status, nil)
	case 402:
		return errors.NewProviderHTTPError(errors.MsgQuotaExhausted, status, nil)
	default:
		return errors.NewProviderHTTPError(errors.ProviderFailedMessage(status), status, nil)
	}
}
