// Package seed loads the bundled datasets into MongoDB.
package seed

import (
	"context"
	"flag"

	"travelassistant/internal/platform/config"
	"travelassistant/internal/platform/docstore"
	"travelassistant/internal/platform/logging"
	"travelassistant/internal/seed"
)

// Config holds seed command configuration.
type Config struct {
	config.Common
	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Force    bool
}

// ParseConfig reads the environment, then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "MongoDB connection string")
	fs.BoolVar(&cfg.Force, "force", false, "drop existing collections before seeding")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds both databases once and returns.
func Run(ctx context.Context, cfg Config) error {
	log := logging.New("seed", cfg.LogLevel)

	ds, err := seed.Load()
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

	rep, err := seed.Run(ctx, client, ds, seed.Options{Force: cfg.Force}, log)
	if err != nil {
		return err
	}
	log.Info().
		Int("places", rep.Places).
		Int("phrases", rep.Phrases).
		Bool("places_skipped", rep.PlacesSkipped).
		Bool("phrases_skipped", rep.PhrasesSkipped).
		Msg("seeding completed")
	return nil
}
