package translation

import (
	"context"
	"encoding/base64"
)

// bytesPerSecond approximates MP3 playback length from its size.
const bytesPerSecond = 16000

// Service validates language codes and delegates to the providers.
type Service struct {
	translator Translator
	speech     Synthesizer
}

func NewService(t Translator, s Synthesizer) *Service {
	return &Service{translator: t, speech: s}
}

// Translate checks both codes and translates text using the region-free
// provider codes.
func (s *Service) Translate(ctx context.Context, text, source, target string) (string, error) {
	if !IsSupported(source) {
		return "", &UnsupportedLanguageError{Role: "Source", Code: source}
	}
	if !IsSupported(target) {
		return "", &UnsupportedLanguageError{Role: "Target", Code: target}
	}
	return s.translator.Translate(ctx, text, ProviderCode(source), ProviderCode(target))
}

// Speech is synthesised audio ready to return to a client.
type Speech struct {
	AudioBase64     string
	DurationSeconds float64
}

// Speak synthesises req, choosing the default voice for the language when
// none is given.
func (s *Service) Speak(ctx context.Context, req SpeechRequest) (Speech, error) {
	defaultVoice, hasVoice := LanguageVoices[req.LanguageCode]
	if !IsSupported(req.LanguageCode) && !hasVoice {
		return Speech{}, &UnsupportedLanguageError{Code: req.LanguageCode}
	}
	if req.VoiceName == "" {
		req.VoiceName = defaultVoice
	}

	audio, err := s.speech.Synthesize(ctx, req)
	if err != nil {
		return Speech{}, err
	}
	return Speech{
		AudioBase64:     base64.StdEncoding.EncodeToString(audio),
		DurationSeconds: float64(len(audio)) / bytesPerSecond,
	}, nil
}
