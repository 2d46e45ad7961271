package provider

import (
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/lang"
	"github.com/docuglot/docuglot/internal/util"
	"github.com/docuglot/docuglot/pkg/errors"
)

// MicrosoftCaller speaks the Microsoft Translator v3 API. Language codes go
// through Microsoft's BCP-47 table; the text travels as an array body.
type MicrosoftCaller struct {
	http   *resty.Client
	logger *zap.Logger
}

func (m *MicrosoftCaller) Name() string {
	return "Microsoft Translator"
}

func (m *MicrosoftCaller) Translate(ctx context.Context, req Request) (string, error) {
	params := map[string]string{
		"api-version": "3.0",
		"to":          lang.MicrosoftCode(req.TargetLang),
	}
	if req.SourceLang != lang.Auto {
		params["from"] = lang.MicrosoftCode(req.SourceLang)
	}

	resp, err := m.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Ocp-Apim-Subscription-Key", req.APIKey).
		SetQueryParams(params).
		SetBody([]map[string]string{{"Text": req.Text}}).
		Post(req.Endpoint + "/translate")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		m.logger.Warn("Microsoft Translator request failed",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", util.TruncateString(resp.String(), 500)),
			zap.String("api_key", util.RedactKey(req.APIKey)),
		)
		return "", errors.NewProviderHTTPError(
			errors.ProviderFailedMessage(resp.StatusCode()), resp.StatusCode(), nil)
	}

	return ExtractMicrosoftText(resp.Body())
}
