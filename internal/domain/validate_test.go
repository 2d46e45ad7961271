package domain

import (
	goerrors "errors"
	"strings"
	"testing"

	"github.com/docuglot/docuglot/pkg/errors"
)

func TestNormalizeRequestDefaults(t *testing.T) {
	got, err := NormalizeRequest(TranslateRequest{Text: "Hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SourceLang != "auto" {
		t.Fatalf("source = %q, want auto", got.SourceLang)
	}
	if got.TargetLang != "en" {
		t.Fatalf("target = %q, want en", got.TargetLang)
	}
	if got.HasCustomProvider {
		t.Fatalf("bare request must route to the default gateway")
	}
}

func TestNormalizeRequestValidation(t *testing.T) {
	cases := []struct {
		name       string
		req        TranslateRequest
		wantReason string
		wantStatus int
	}{
		{
			name:       "empty text",
			req:        TranslateRequest{Text: ""},
			wantReason: errors.ReasonMissingText,
			wantStatus: 400,
		},
		{
			name:       "whitespace text",
			req:        TranslateRequest{Text: " \n\t "},
			wantReason: errors.ReasonMissingText,
			wantStatus: 400,
		},
		{
			name:       "oversized text",
			req:        TranslateRequest{Text: strings.Repeat("x", 50001)},
			wantReason: errors.ReasonTextTooLong,
			wantStatus: 413,
		},
		{
			name:       "bad source language",
			req:        TranslateRequest{Text: "Hello", SourceLang: "xx"},
			wantReason: errors.ReasonInvalidSourceLang,
			wantStatus: 400,
		},
		{
			name:       "bad target language",
			req:        TranslateRequest{Text: "Hello", TargetLang: "xx"},
			wantReason: errors.ReasonInvalidTargetLang,
			wantStatus: 400,
		},
		{
			name:       "unknown provider",
			req:        TranslateRequest{Text: "Hello", ProviderType: "babelfish"},
			wantReason: errors.ReasonInvalidProvider,
			wantStatus: 400,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeRequest(tc.req)
			if err == nil {
				t.Fatalf("expected error")
			}
			var verr *errors.ValidationError
			if !goerrors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Reason != tc.wantReason {
				t.Fatalf("reason = %q, want %q", verr.Reason, tc.wantReason)
			}
			if verr.HTTPStatus() != tc.wantStatus {
				t.Fatalf("status = %d, want %d", verr.HTTPStatus(), tc.wantStatus)
			}
		})
	}
}

func TestNormalizeRequestRuneLength(t *testing.T) {
	// 50000 multi-byte runes exceed 50000 bytes but stay within the limit.
	text := strings.Repeat("あ", 50000)
	if _, err := NormalizeRequest(TranslateRequest{Text: text}); err != nil {
		t.Fatalf("rune-counted limit rejected multi-byte text: %v", err)
	}
}

func TestNormalizeRequestCustomProviderDetection(t *testing.T) {
	cases := []struct {
		name string
		req  TranslateRequest
		want ProviderType
	}{
		{"explicit type", TranslateRequest{Text: "hi", ProviderType: "gemini"}, ProviderGemini},
		{"key only", TranslateRequest{Text: "hi", CustomAPIKey: "sk"}, ProviderCustom},
		{"url only", TranslateRequest{Text: "hi", CustomBaseURL: "https://llm.local"}, ProviderCustom},
		{"mixed case type", TranslateRequest{Text: "hi", ProviderType: " OpenAI "}, ProviderOpenAI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeRequest(tc.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.HasCustomProvider {
				t.Fatalf("expected custom provider routing")
			}
			if got.Provider != tc.want {
				t.Fatalf("provider = %q, want %q", got.Provider, tc.want)
			}
		})
	}
}

func TestNormalizeRequestTrimsOverrides(t *testing.T) {
	got, err := NormalizeRequest(TranslateRequest{
		Text:          "Hello",
		ProviderType:  "openai",
		CustomAPIKey:  "  sk-test  ",
		CustomBaseURL: " https://api.example.com ",
		Model:         " gpt-4o ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.APIKey != "sk-test" || got.BaseURL != "https://api.example.com" || got.Model != "gpt-4o" {
		t.Fatalf("overrides not trimmed: %+v", got)
	}
}

func TestProviderLabels(t *testing.T) {
	cases := map[ProviderType]string{
		ProviderMicrosoft:       "Microsoft Translator",
		ProviderGoogleTranslate: "Google Cloud Translation",
		ProviderAzure:           "Azure OpenAI",
	}
	for provider, want := range cases {
		if got := provider.Label(); got != want {
			t.Fatalf("%s label = %q, want %q", provider, got, want)
		}
	}
}
