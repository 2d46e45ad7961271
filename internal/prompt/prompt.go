// Package prompt builds the shared system prompt for LLM-style providers.
// Phrase-based APIs (DeepLX, Microsoft, Google) do not use it.
package prompt

import (
	"fmt"

	"github.com/docuglot/docuglot/internal/lang"
)

const outputRules = " Return plain text only, with no markdown formatting. Preserve paragraph breaks using plain newlines. Do not add explanations or commentary."

// System renders the translation system prompt for the given language pair.
// Pure function of its inputs.
func System(sourceLang, targetLang string) string {
	target := lang.Name(targetLang)
	if sourceLang == "" || sourceLang == lang.Auto {
		return fmt.Sprintf(
			"You are a professional translator. Detect the language of the user's text and translate it into %s.%s",
			target, outputRules)
	}
	return fmt.Sprintf(
		"You are a professional translator. Translate the user's text from %s into %s.%s",
		lang.Name(sourceLang), target, outputRules)
}
