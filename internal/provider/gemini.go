package provider

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/docuglot/docuglot/internal/prompt"
)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiCaller talks to the Gemini API through the genai SDK. The client is
// built per request because the API key travels with each request.
type GeminiCaller struct {
	logger *zap.Logger
}

func (g *GeminiCaller) Name() string {
	return "Gemini"
}

func (g *GeminiCaller) Translate(ctx context.Context, req Request) (string, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  req.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if req.Endpoint != "" && req.Endpoint != geminiDefaultBaseURL {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: req.Endpoint}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: prompt.System(req.SourceLang, req.TargetLang)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, req.Model, []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: req.Text},
			},
		},
	}, config)
	if err != nil {
		g.logger.Error("Gemini generation failed", zap.Error(err))
		return "", err
	}

	text := ExtractGeminiText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}

	g.logger.Debug("Gemini response received", zap.Int("length", len(text)))
	return text, nil
}

// ExtractGeminiText concatenates the text parts of the first candidate.
func ExtractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "")
}
