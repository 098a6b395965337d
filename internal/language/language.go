package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Common full-name forms users type instead of codes. Everything else goes
// through BCP 47 parsing.
var nameAliases = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"russian":    "ru",
	"arabic":     "ar",
	"hindi":      "hi",
	"dutch":      "nl",
	"polish":     "pl",
	"swedish":    "sv",
	"danish":     "da",
	"norwegian":  "no",
	"finnish":    "fi",
}

// ToISO1 converts any recognized language identifier (ISO 639-1/639-2 code,
// BCP 47 tag, or common English name) to its ISO 639-1 base code. Unrecognized
// two-letter codes pass through so the engine stays the authority; anything
// else unrecognized yields the empty string.
func ToISO1(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if alias, ok := nameAliases[code]; ok {
		return alias
	}
	tag, err := xlanguage.Parse(code)
	if err != nil {
		if len(code) == 2 {
			return code
		}
		return ""
	}
	base, confidence := tag.Base()
	if confidence == xlanguage.No {
		if len(code) == 2 {
			return code
		}
		return ""
	}
	return base.String()
}

// DisplayName returns a human-readable English name for a language code,
// "auto" for empty input, and the uppercased input when unrecognized.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "auto"
	}
	tag, err := xlanguage.Parse(strings.ToLower(trimmed))
	if err != nil {
		return strings.ToUpper(trimmed)
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(trimmed)
}
