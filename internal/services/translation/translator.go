package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// Translator translates text between provider language codes ("en", "ja").
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// ========== Google Cloud Translation ==========

// CloudTranslator calls the Cloud Translation v2 API.
type CloudTranslator struct {
	svc *translate.Service
}

func NewCloudTranslator(ctx context.Context, opts ...option.ClientOption) (*CloudTranslator, error) {
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create translate client: %w", err)
	}
	return &CloudTranslator{svc: svc}, nil
}

func (t *CloudTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	resp, err := t.svc.Translations.List([]string{text}, target).
		Source(source).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}
	if len(resp.Translations) == 0 {
		return "", errors.New("empty translation response")
	}
	return resp.Translations[0].TranslatedText, nil
}

// ========== Gemini ==========

const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiTranslator asks a Gemini model for a literal translation.
type GeminiTranslator struct {
	client *genai.Client
	model  string
}

func NewGeminiTranslator(ctx context.Context, apiKey, model string) (*GeminiTranslator, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiTranslator{client: client, model: model}, nil
}

func (t *GeminiTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	model := t.client.GenerativeModel(t.model)
	model.SetTemperature(0)

	res, err := model.GenerateContent(ctx, genai.Text(translationPrompt(text, source, target)))
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(responseText(res))
	if out == "" {
		return "", errors.New("empty translation response")
	}
	return out, nil
}

func (t *GeminiTranslator) Close() error {
	return t.client.Close()
}

func translationPrompt(text, source, target string) string {
	return fmt.Sprintf(`You are a translation API.
Translate the text between the markers from language %q to language %q (ISO 639-1 codes).

Rules:
1. Reply with the translation only.
2. No explanations, quotes, transliteration or Markdown.
3. Keep names, numbers and punctuation as they are.

<<<
%s
>>>`, source, target, text)
}

func responseText(res *genai.GenerateContentResponse) string {
	var b strings.Builder
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range res.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

// ========== Cache ==========

const defaultCacheEntries = 4096

type cacheKey struct {
	source, target, text string
}

// CachedTranslator remembers successful translations. The cache is reset once
// it holds limit entries.
type CachedTranslator struct {
	next  Translator
	limit int

	mu sync.Mutex
	m  map[cacheKey]string
}

func NewCachedTranslator(next Translator, limit int) *CachedTranslator {
	if limit <= 0 {
		limit = defaultCacheEntries
	}
	return &CachedTranslator{next: next, limit: limit, m: make(map[cacheKey]string)}
}

func (t *CachedTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	key := cacheKey{source: source, target: target, text: text}
	t.mu.Lock()
	if v, ok := t.m[key]; ok {
		t.mu.Unlock()
		return v, nil
	}
	t.mu.Unlock()

	out, err := t.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	if len(t.m) >= t.limit {
		t.m = make(map[cacheKey]string)
	}
	t.m[key] = out
	t.mu.Unlock()
	return out, nil
}
