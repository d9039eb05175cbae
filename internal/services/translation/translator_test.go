package translation

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestProviderCode(t *testing.T) {
	tests := map[string]string{
		"en":     "en",
		"es-ES":  "es",
		"cmn-CN": "cmn",
		"":       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ProviderCode(in), in)
	}
}

func TestUnsupportedLanguageErrorMatchesSentinel(t *testing.T) {
	var err error = &UnsupportedLanguageError{Role: "Target", Code: "xx"}
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.EqualError(t, err, "Target language not supported: xx")
}

func TestCachedTranslator(t *testing.T) {
	next := &fakeTranslator{result: "Bonjour"}
	c := NewCachedTranslator(next, 2)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		out, err := c.Translate(ctx, "Hello", "en", "fr")
		require.NoError(t, err)
		assert.Equal(t, "Bonjour", out)
	}
	assert.Len(t, next.calls, 1)

	_, err := c.Translate(ctx, "Hello", "en", "de")
	require.NoError(t, err)
	assert.Len(t, next.calls, 2, "target is part of the key")

	// third distinct key resets the cache
	_, err = c.Translate(ctx, "Bye", "en", "fr")
	require.NoError(t, err)
	_, err = c.Translate(ctx, "Hello", "en", "fr")
	require.NoError(t, err)
	assert.Len(t, next.calls, 4)
}

func TestCachedTranslatorSkipsFailures(t *testing.T) {
	next := &fakeTranslator{err: errors.New("boom")}
	c := NewCachedTranslator(next, 0)

	_, err := c.Translate(context.Background(), "Hello", "en", "fr")
	require.Error(t, err)

	next.err, next.result = nil, "Bonjour"
	out, err := c.Translate(context.Background(), "Hello", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", out)
	assert.Len(t, next.calls, 2)
}

func TestResponseText(t *testing.T) {
	res := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text("Hola"), genai.Text(" mundo")}},
	}}}
	assert.Equal(t, "Hola mundo", responseText(res))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{}))
	assert.Empty(t, responseText(nil))
}

func TestTranslationPromptCarriesCodes(t *testing.T) {
	p := translationPrompt("Good morning", "en", "ja")
	assert.Contains(t, p, `"en"`)
	assert.Contains(t, p, `"ja"`)
	assert.Contains(t, p, "<<<\nGood morning\n>>>")
}

func TestNewGeminiTranslatorNeedsKey(t *testing.T) {
	_, err := NewGeminiTranslator(context.Background(), "", "")
	assert.Error(t, err)
}

func TestCloudTranslator(t *testing.T) {
	var gotQ, gotTarget, gotSource, gotFormat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ, gotTarget = r.FormValue("q"), r.FormValue("target")
		gotSource, gotFormat = r.FormValue("source"), r.FormValue("format")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"Hola"}]},"translations":[{"translatedText":"Hola"}]}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	tr, err := NewCloudTranslator(ctx, option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	require.NoError(t, err)

	out, err := tr.Translate(ctx, "Hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "Hola", out)
	assert.Equal(t, "Hello", gotQ)
	assert.Equal(t, "es", gotTarget)
	assert.Equal(t, "en", gotSource)
	assert.Equal(t, "text", gotFormat)
}

func TestCloudSynthesizer(t *testing.T) {
	audio := []byte("ID3-fake-mp3")
	var got map[string]map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"audioContent": base64.StdEncoding.EncodeToString(audio),
		})
	}))
	defer srv.Close()

	ctx := context.Background()
	s, err := NewCloudSynthesizer(ctx, option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	require.NoError(t, err)

	out, err := s.Synthesize(ctx, SpeechRequest{
		Text:         "Bonjour",
		LanguageCode: "fr-FR",
		VoiceName:    "fr-FR-Chirp3-HD-Aoede",
		SpeakingRate: 1.25,
	})
	require.NoError(t, err)
	assert.Equal(t, audio, out)

	assert.Equal(t, "Bonjour", got["input"]["text"])
	assert.Equal(t, "fr-FR", got["voice"]["languageCode"])
	assert.Equal(t, "fr-FR-Chirp3-HD-Aoede", got["voice"]["name"])
	assert.Equal(t, "MP3", got["audioConfig"]["audioEncoding"])
	assert.Equal(t, 1.25, got["audioConfig"]["speakingRate"])
}
