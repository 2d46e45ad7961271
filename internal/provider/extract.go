package provider

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Markdown patterns stripped from LLM output. The system prompt already
// forbids markdown; this is the second layer of enforcement.
var (
	headerRE     = regexp.MustCompile(`(?m)^#{1,6}[ \t]*`)
	boldRE       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderRE  = regexp.MustCompile(`__(.+?)__`)
	italicRE     = regexp.MustCompile(`\*(.+?)\*`)
	italicUndRE  = regexp.MustCompile(`\b_(.+?)_\b`)
	inlineCodeRE = regexp.MustCompile("`([^`]*)`")
	bulletRE     = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
)

// StripMarkdown removes residual markdown formatting (bold, italics,
// headers, bullets, code spans) from translated text.
func StripMarkdown(s string) string {
	s = headerRE.ReplaceAllString(s, "")
	s = bulletRE.ReplaceAllString(s, "")
	s = boldRE.ReplaceAllString(s, "$1")
	s = boldUnderRE.ReplaceAllString(s, "$1")
	s = italicRE.ReplaceAllString(s, "$1")
	s = italicUndRE.ReplaceAllString(s, "$1")
	s = inlineCodeRE.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractChatText pulls choices[0].message.content out of a chat-completion
// response body and strips residual markdown.
func ExtractChatText(body []byte) (string, error) {
	var resp chatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("invalid chat completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty chat completion content")
	}
	return StripMarkdown(content), nil
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// ExtractAnthropicText concatenates content items of type "text" from an
// Anthropic messages response.
func ExtractAnthropicText(body []byte) (string, error) {
	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("invalid anthropic response: %w", err)
	}
	var parts []string
	for _, item := range resp.Content {
		if item.Type == "text" && item.Text != "" {
			parts = append(parts, item.Text)
		}
	}
	joined := strings.TrimSpace(strings.Join(parts, ""))
	if joined == "" {
		return "", fmt.Errorf("no text content in anthropic response")
	}
	return joined, nil
}

type deepLXResponse struct {
	TranslatedText string `json:"translatedText"`
	Data           string `json:"data"`
	Translation    string `json:"translation"`
	Text           string `json:"text"`
}

// ExtractDeepLXText returns the first non-empty of the four field names
// DeepLX deployments are known to respond with.
func ExtractDeepLXText(body []byte) (string, error) {
	var resp deepLXResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("invalid deeplx response: %w", err)
	}
	for _, candidate := range []string{resp.TranslatedText, resp.Data, resp.Translation, resp.Text} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", fmt.Errorf("no translation in deeplx response")
}

type microsoftResponse []struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// ExtractMicrosoftText pulls response[0].translations[0].text from a
// Microsoft Translator response.
func ExtractMicrosoftText(body []byte) (string, error) {
	var resp microsoftResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("invalid microsoft response: %w", err)
	}
	if len(resp) == 0 || len(resp[0].Translations) == 0 {
		return "", fmt.Errorf("no translations in microsoft response")
	}
	return strings.TrimSpace(resp[0].Translations[0].Text), nil
}

type googleTranslateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// ExtractGoogleText pulls data.translations[0].translatedText from a Google
// Cloud Translation response.
func ExtractGoogleText(body []byte) (string, error) {
	var resp googleTranslateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("invalid google translate response: %w", err)
	}
	if len(resp.Data.Translations) == 0 {
		return "", fmt.Errorf("no translations in google translate response")
	}
	return strings.TrimSpace(resp.Data.Translations[0].TranslatedText), nil
}
