package provider

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/lang"
	"github.com/docuglot/docuglot/internal/util"
	"github.com/docuglot/docuglot/pkg/errors"
)

// DeepLXCaller speaks the DeepLX translate shape. The bearer token is
// optional; self-hosted instances commonly run without one.
type DeepLXCaller struct {
	http   *resty.Client
	logger *zap.Logger
}

func (d *DeepLXCaller) Name() string {
	return "DeepLX"
}

func (d *DeepLXCaller) Translate(ctx context.Context, req Request) (string, error) {
	// DeepLX expects the "auto" literal for detection and uppercased codes
	// otherwise.
	source := req.SourceLang
	if source != lang.Auto {
		source = strings.ToUpper(source)
	}

	body := map[string]string{
		"text":        req.Text,
		"source_lang": source,
		"target_lang": strings.ToUpper(req.TargetLang),
	}

	r := d.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if req.APIKey != "" {
		r.SetHeader("Authorization", "Bearer "+req.APIKey)
	}

	resp, err := r.Post(req.Endpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		d.logger.Warn("DeepLX request failed",
			zap.String("endpoint", req.Endpoint),
			zap.Int("status", resp.StatusCode()),
			zap.String("body", util.TruncateString(resp.String(), 500)),
		)
		return "", errors.NewProviderHTTPError(
			errors.ProviderFailedMessage(resp.StatusCode()), resp.StatusCode(), nil)
	}

	return ExtractDeepLXText(resp.Body())
}
