// Package lang holds the static language tables: the supported short codes
// with display names, plus the BCP-47 variants expected by the Microsoft and
// Google translation APIs. All tables are read-only after startup.
package lang

// Auto is the pseudo source code requesting language detection.
const Auto = "auto"

// Names maps supported short codes to human-readable names, used by the
// system prompt and the languages endpoint.
var Names = map[string]string{
	"en":    "English",
	"zh":    "Simplified Chinese",
	"zh-TW": "Traditional Chinese",
	"ja":    "Japanese",
	"ko":    "Korean",
	"fr":    "French",
	"de":    "German",
	"es":    "Spanish",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"ar":    "Arabic",
	"hi":    "Hindi",
	"th":    "Thai",
	"vi":    "Vietnamese",
	"nl":    "Dutch",
	"pl":    "Polish",
	"tr":    "Turkish",
	"id":    "Indonesian",
}

// microsoftCodes maps short codes to the BCP-47 tags the Microsoft
// Translator API expects where they differ.
var microsoftCodes = map[string]string{
	"zh":    "zh-Hans",
	"zh-TW": "zh-Hant",
}

// googleCodes maps short codes to Google Cloud Translation codes where they
// differ.
var googleCodes = map[string]string{
	"zh":    "zh-CN",
	"zh-TW": "zh-TW",
}

// IsSupported reports whether code belongs to the fixed language set. The
// auto pseudo code is only valid as a source language.
func IsSupported(code string) bool {
	_, ok := Names[code]
	return ok
}

// Name returns the display name for a supported code, or the code itself.
func Name(code string) string {
	if name, ok := Names[code]; ok {
		return name
	}
	return code
}

// MicrosoftCode converts a short code to Microsoft's tag format.
func MicrosoftCode(code string) string {
	if mapped, ok := microsoftCodes[code]; ok {
		return mapped
	}
	return code
}

// GoogleCode converts a short code to Google's tag format.
func GoogleCode(code string) string {
	if mapped, ok := googleCodes[code]; ok {
		return mapped
	}
	return code
}
