// Package translation runs the translation service.
package translation

import (
	"context"
	"flag"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"travelassistant/internal/platform/config"
	"travelassistant/internal/platform/docstore"
	"travelassistant/internal/platform/httpserver"
	"travelassistant/internal/platform/logging"
	"travelassistant/internal/services/translation"
)

const serviceName = "translation"

// Translator backends.
const (
	BackendCloud  = "cloud"
	BackendGemini = "gemini"
)

// Config holds translation command configuration.
type Config struct {
	config.Common
	Port              int    `env:"SERVICE_PORT" envDefault:"8001"`
	MongoURI          string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Translator        string `env:"TRANSLATOR" envDefault:"cloud"`
	GeminiAPIKey      string `env:"GEMINI_API_KEY"`
	GeminiModel       string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash-lite"`
	ServiceAccountKey string `env:"SERVICE_ACCOUNT_KEY_PATH"`
	CacheSize         int    `env:"TRANSLATION_CACHE_SIZE" envDefault:"4096"`
}

// ParseConfig reads the environment, then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	fs.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "MongoDB connection string")
	fs.StringVar(&cfg.Translator, "translator", cfg.Translator, "translation backend: cloud or gemini")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Translator != BackendCloud && cfg.Translator != BackendGemini {
		return Config{}, fmt.Errorf("unknown translator %q", cfg.Translator)
	}
	return cfg, nil
}

// googleOptions authenticates with the service account key when one is
// configured and with application default credentials otherwise.
func (c Config) googleOptions() []option.ClientOption {
	if c.ServiceAccountKey == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(c.ServiceAccountKey)}
}

// Run builds the provider clients, connects to MongoDB and serves until ctx
// is cancelled.
func Run(ctx context.Context, cfg Config) error {
	log := logging.New(serviceName, cfg.LogLevel)

	tr, closeTr, err := newTranslator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeTr()

	speech, err := translation.NewCloudSynthesizer(ctx, cfg.googleOptions()...)
	if err != nil {
		return err
	}

	client, err := docstore.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := docstore.Disconnect(client); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	log.Info().Msg("MongoDB connected")

	r := httpserver.NewRouter(httpserver.Options{
		Service:     serviceName,
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})
	svc := translation.NewService(translation.NewCachedTranslator(tr, cfg.CacheSize), speech)
	translation.NewHandler(log, svc, translation.NewMongoPhraseStore(client)).Register(r)
	return httpserver.Serve(ctx, cfg.Port, r, log)
}

func newTranslator(ctx context.Context, cfg Config, log zerolog.Logger) (translation.Translator, func(), error) {
	if cfg.Translator == BackendGemini {
		g, err := translation.NewGeminiTranslator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("model", cfg.GeminiModel).Msg("using Gemini translator")
		return g, func() {
			if err := g.Close(); err != nil {
				log.Warn().Err(err).Msg("gemini close")
			}
		}, nil
	}

	c, err := translation.NewCloudTranslator(ctx, cfg.googleOptions()...)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msg("using Cloud Translation")
	return c, func() {}, nil
}
