// Package translation translates text, synthesises speech and serves the
// common phrase book.
package translation

import (
	"errors"
	"strings"
)

// SupportedLanguages maps a language code to its display name.
var SupportedLanguages = map[string]string{
	"en":     "English",
	"es-ES":  "Spanish (Spain)",
	"fr-FR":  "French",
	"de-DE":  "German",
	"it-IT":  "Italian",
	"ja-JP":  "Japanese",
	"ko-KR":  "Korean",
	"cmn-CN": "Chinese (Mandarin)",
	"ru-RU":  "Russian",
	"hi-IN":  "Hindi",
	"gu-IN":  "Gujarati",
}

// LanguageVoices is the default text-to-speech voice per language.
var LanguageVoices = map[string]string{
	"hi-IN":  "hi-IN-Chirp3-HD-Puck",
	"gu-IN":  "gu-IN-Chirp3-HD-Leda",
	"ja-JP":  "ja-JP-Chirp3-HD-Aoede",
	"es-ES":  "es-ES-Chirp3-HD-Charon",
	"fr-FR":  "fr-FR-Chirp3-HD-Aoede",
	"ko-KR":  "ko-KR-Chirp3-HD-Leda",
	"cmn-CN": "cmn-CN-Chirp3-HD-Charon",
	"ru-RU":  "ru-RU-Chirp3-HD-Orus",
	"de-DE":  "de-DE-Chirp3-HD-Charon",
}

// ErrUnsupportedLanguage matches every UnsupportedLanguageError.
var ErrUnsupportedLanguage = errors.New("language not supported")

// UnsupportedLanguageError names the rejected code. Role is "Source",
// "Target" or empty.
type UnsupportedLanguageError struct {
	Role string
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	if e.Role == "" {
		return "Language not supported: " + e.Code
	}
	return e.Role + " language not supported: " + e.Code
}

func (e *UnsupportedLanguageError) Is(target error) bool {
	return target == ErrUnsupportedLanguage
}

// IsSupported reports whether code is a supported language code.
func IsSupported(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// ProviderCode drops the region suffix ("es-ES" becomes "es").
func ProviderCode(code string) string {
	base, _, _ := strings.Cut(code, "-")
	return base
}
