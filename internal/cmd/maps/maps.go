// Package maps runs the map service.
package maps

import (
	"context"
	"flag"

	"travelassistant/internal/platform/config"
	"travelassistant/internal/platform/docstore"
	"travelassistant/internal/platform/httpserver"
	"travelassistant/internal/platform/logging"
	"travelassistant/internal/services/places"
)

const serviceName = "map"

// Config holds map command configuration.
type Config struct {
	config.Common
	Port     int    `env:"SERVICE_PORT" envDefault:"8002"`
	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
}

// ParseConfig reads the environment, then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	fs.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "MongoDB connection string")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run connects to MongoDB and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	log := logging.New(serviceName, cfg.LogLevel)

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
	places.NewHandler(log, places.NewMongoStore(client)).Register(r)
	return httpserver.Serve(ctx, cfg.Port, r, log)
}
