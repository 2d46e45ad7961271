package service

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/domain"
	"github.com/docuglot/docuglot/internal/provider"
	"github.com/docuglot/docuglot/pkg/errors"
)

type fakeGateway struct {
	configured bool
	result     string
	err        error

	calls      int
	lastText   string
	lastSource string
	lastTarget string
}

func (f *fakeGateway) Configured() bool { return f.configured }

func (f *fakeGateway) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	f.calls++
	f.lastText = text
	f.lastSource = sourceLang
	f.lastTarget = targetLang
	return f.result, f.err
}

func newTestTranslator(gw *fakeGateway) *Translator {
	registry := provider.NewRegistry(resty.New(), zap.NewNop())
	return NewTranslator(registry, gw, zap.NewNop())
}

func TestTranslateRoutesToGatewayWithoutCustomProvider(t *testing.T) {
	gw := &fakeGateway{configured: true, result: "Bonjour"}
	translator := newTestTranslator(gw)

	got, err := translator.Translate(context.Background(), domain.TranslateRequest{
		Text: "Hello", TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bonjour" {
		t.Fatalf("got %q", got)
	}
	if gw.calls != 1 {
		t.Fatalf("expected one gateway call, got %d", gw.calls)
	}
	if gw.lastSource != "auto" {
		t.Fatalf("expected defaulted source auto, got %q", gw.lastSource)
	}
	if gw.lastTarget != "fr" {
		t.Fatalf("expected target fr, got %q", gw.lastTarget)
	}
}

func TestTranslateMissingText(t *testing.T) {
	translator := newTestTranslator(&fakeGateway{configured: true})

	_, err := translator.Translate(context.Background(), domain.TranslateRequest{Text: "   "})
	if err == nil {
		t.Fatalf("expected error")
	}
	var verr *errors.ValidationError
	if !goerrors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Reason != errors.ReasonMissingText {
		t.Fatalf("expected missing_text reason, got %q", verr.Reason)
	}
	if verr.HTTPStatus() != 400 {
		t.Fatalf("expected status 400, got %d", verr.HTTPStatus())
	}
}

func TestTranslateTextLengthBoundary(t *testing.T) {
	gw := &fakeGateway{configured: true, result: "ok"}
	translator := newTestTranslator(gw)

	atLimit := strings.Repeat("a", 50000)
	if _, err := translator.Translate(context.Background(), domain.TranslateRequest{
		Text: atLimit, TargetLang: "en",
	}); err != nil {
		t.Fatalf("text at the limit should pass: %v", err)
	}

	_, err := translator.Translate(context.Background(), domain.TranslateRequest{
		Text: atLimit + "a", TargetLang: "en",
	})
	if err == nil {
		t.Fatalf("expected error for oversized text")
	}
	var verr *errors.ValidationError
	if !goerrors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Reason != errors.ReasonTextTooLong {
		t.Fatalf("expected text_too_long reason, got %q", verr.Reason)
	}
	if verr.HTTPStatus() != 413 {
		t.Fatalf("expected status 413, got %d", verr.HTTPStatus())
	}
	if gw.calls != 1 {
		t.Fatalf("oversized text must be rejected before any backend call")
	}
}

func TestTranslateKeyedProviderWithoutKey(t *testing.T) {
	gw := &fakeGateway{configured: true}
	translator := newTestTranslator(gw)

	_, err := translator.Translate(context.Background(), domain.TranslateRequest{
		Text: "Hello", TargetLang: "ko", ProviderType: "microsoft",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	var cerr *errors.MissingCredentialError
	if !goerrors.As(err, &cerr) {
		t.Fatalf("expected MissingCredentialError, got %T", err)
	}
	if cerr.Message != "Microsoft Translator requires an API Key" {
		t.Fatalf("got message %q", cerr.Message)
	}
	if gw.calls != 0 {
		t.Fatalf("custom provider request must not fall back to the gateway")
	}
}

func TestTranslateCustomProviderRoundTrip(t *testing.T) {
	var captured struct {
		path string
		auth string
		body map[string]any
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured.body)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Hallo"}}]}`))
	}))
	defer server.Close()

	gw := &fakeGateway{configured: true}
	translator := newTestTranslator(gw)

	got, err := translator.Translate(context.Background(), domain.TranslateRequest{
		Text:          "Hello",
		SourceLang:    "en",
		TargetLang:    "de",
		ProviderType:  "openai",
		CustomAPIKey:  "sk-test",
		CustomBaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hallo" {
		t.Fatalf("got %q", got)
	}
	if captured.path != "/v1/chat/completions" {
		t.Fatalf("expected normalized chat completions path, got %q", captured.path)
	}
	if captured.auth != "Bearer sk-test" {
		t.Fatalf("expected bearer auth, got %q", captured.auth)
	}
	if captured.body["model"] != "gpt-4o-mini" {
		t.Fatalf("expected provider default model, got %v", captured.body["model"])
	}
	if gw.calls != 0 {
		t.Fatalf("gateway must not be called for custom provider requests")
	}
}

func TestTranslateCredentialsOnlyDefaultsToCustom(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	translator := newTestTranslator(&fakeGateway{configured: true})

	// providerType omitted but a base URL supplied: treated as a custom
	// OpenAI-compatible provider, not routed to the gateway.
	if _, err := translator.Translate(context.Background(), domain.TranslateRequest{
		Text: "Hello", TargetLang: "ja", CustomBaseURL: server.URL,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/v1/chat/completions" {
		t.Fatalf("expected chat completions call, got %q", path)
	}
}

func TestTranslateUnknownProvider(t *testing.T) {
	translator := newTestTranslator(&fakeGateway{configured: true})

	_, err := translator.Translate(context.Background(), domain.TranslateRequest{
		Text: "Hello", TargetLang: "en", ProviderType: "babelfish",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	var verr *errors.ValidationError
	if !goerrors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Reason != errors.ReasonInvalidProvider {
		t.Fatalf("expected invalid_provider_type reason, got %q", verr.Reason)
	}
}

func TestTranslateProviderRateLimitSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer server.Close()

	translator := newTestTranslator(&fakeGateway{configured: true})

	_, err := translator.Translate(context.Background(), domain.TranslateRequest{
		Text: "Hello", TargetLang: "fr", ProviderType: "deepseek",
		CustomAPIKey: "sk", CustomBaseURL: server.URL,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	var httpErr *errors.ProviderHTTPError
	if !goerrors.As(err, &httpErr) {
		t.Fatalf("expected ProviderHTTPError, got %T", err)
	}
	if httpErr.Message != errors.MsgRateLimited {
		t.Fatalf("got message %q", httpErr.Message)
	}
	if httpErr.HTTPStatus() != 500 {
		t.Fatalf("expected outward status 500, got %d", httpErr.HTTPStatus())
	}
}

func TestGatewayConfigured(t *testing.T) {
	if !newTestTranslator(&fakeGateway{configured: true}).GatewayConfigured() {
		t.Fatalf("expected configured")
	}
	if newTestTranslator(&fakeGateway{}).GatewayConfigured() {
		t.Fatalf("expected unconfigured")
	}
}
