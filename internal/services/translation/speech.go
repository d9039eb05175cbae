package translation

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

// SpeechRequest is one synthesis call. VoiceName may be empty to let the
// provider pick a voice for LanguageCode.
type SpeechRequest struct {
	Text         string
	LanguageCode string
	VoiceName    string
	SpeakingRate float64
	Pitch        float64
}

// Synthesizer turns text into MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error)
}

// CloudSynthesizer calls the Cloud Text-to-Speech v1 API.
type CloudSynthesizer struct {
	svc *texttospeech.Service
}

func NewCloudSynthesizer(ctx context.Context, opts ...option.ClientOption) (*CloudSynthesizer, error) {
	svc, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create text-to-speech client: %w", err)
	}
	return &CloudSynthesizer{svc: svc}, nil
}

func (s *CloudSynthesizer) Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error) {
	resp, err := s.svc.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: req.Text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: req.LanguageCode,
			Name:         req.VoiceName,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  req.SpeakingRate,
			Pitch:         req.Pitch,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio content: %w", err)
	}
	return audio, nil
}
