package provider

import (
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/lang"
	"github.com/docuglot/docuglot/internal/util"
	"github.com/docuglot/docuglot/pkg/errors"
)

// GoogleTranslateCaller speaks the Google Cloud Translation v2 API with the
// key as a query parameter. Logs never include the query string.
type GoogleTranslateCaller struct {
	http   *resty.Client
	logger *zap.Logger
}

func (g *GoogleTranslateCaller) Name() string {
	return "Google Cloud Translation"
}

func (g *GoogleTranslateCaller) Translate(ctx context.Context, req Request) (string, error) {
	body := map[string]any{
		"q":      req.Text,
		"target": lang.GoogleCode(req.TargetLang),
		"format": "text",
	}
	if req.SourceLang != lang.Auto {
		body["source"] = lang.GoogleCode(req.SourceLang)
	}

	resp, err := g.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", req.APIKey).
		SetBody(body).
		Post(req.Endpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		g.logger.Warn("Google Translation request failed",
			zap.String("endpoint", req.Endpoint),
			zap.Int("status", resp.StatusCode()),
			zap.String("body", util.TruncateString(resp.String(), 500)),
			zap.String("api_key", util.RedactKey(req.APIKey)),
		)
		return "", errors.NewProviderHTTPError(
			errors.ProviderFailedMessage(resp.StatusCode()), resp.StatusCode(), nil)
	}

	return ExtractGoogleText(resp.Body())
}
