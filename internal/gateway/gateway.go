// Package gateway implements the system default translation backend: a
// hosted OpenAI-compatible endpoint with a server-held credential, used when
// a request carries no custom provider configuration.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/config"
	"github.com/docuglot/docuglot/internal/prompt"
	"github.com/docuglot/docuglot/internal/provider"
	apperrors "github.com/docuglot/docuglot/pkg/errors"
)

type Client struct {
	client     openai.Client
	model      string
	configured bool
	logger     *zap.Logger
}

func New(cfg config.GatewayConfig, logger *zap.Logger) *Client {
	if cfg.APIKey == "" {
		logger.Warn("Default gateway disabled (no GATEWAY_API_KEY)")
		return &Client{logger: logger}
	}

	// No automatic retries: a failed call surfaces immediately and any retry
	// policy belongs to the caller.
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	)
	logger.Info("Default gateway enabled",
		zap.String("base_url", cfg.BaseURL),
		zap.String("model", cfg.Model),
	)
	return &Client{
		client:     client,
		model:      cfg.Model,
		configured: true,
		logger:     logger,
	}
}

// Configured reports whether the server holds a gateway credential.
func (c *Client) Configured() bool {
	return c.configured
}

// Translate performs one chat-completion round trip against the hosted
// gateway. Rate-limit and quota statuses map to their dedicated messages.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if !c.configured {
		return "", apperrors.NewDefaultServiceUnavailable()
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System(sourceLang, targetLang)),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		c.logger.Error("Gateway completion failed", zap.Error(err))
		return "", mapGatewayError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in gateway response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty gateway response")
	}

	return provider.StripMarkdown(content), nil
}

func mapGatewayError(err error) error {
	var apierr *openai.Error
	if !errors.As(err, &apierr) {
		return err
	}
	switch apierr.StatusCode {
	case 429:
		return apperrors.NewProviderHTTPError(apperrors.MsgRateLimited, apierr.StatusCode, nil)
	case 402:
		return apperrors.NewProviderHTTPError(apperrors.MsgQuotaExhausted, apierr.StatusCode, nil)
	default:
		return apperrors.NewProviderHTTPError(
			apperrors.ProviderFailedMessage(apierr.StatusCode), apierr.StatusCode, nil)
	}
}
