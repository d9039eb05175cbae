// Package packing runs the packing list service.
package packing

import (
	"context"
	"flag"

	"travelassistant/internal/platform/config"
	"travelassistant/internal/platform/httpserver"
	"travelassistant/internal/platform/logging"
	"travelassistant/internal/services/packinglist"
)

const serviceName = "packing"

// Config holds packing command configuration.
type Config struct {
	config.Common
	Port int `env:"SERVICE_PORT" envDefault:"8003"`
}

// ParseConfig reads the environment, then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	log := logging.New(serviceName, cfg.LogLevel)
	r := httpserver.NewRouter(httpserver.Options{
		Service:     serviceName,
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})
	packinglist.NewHandler(log).Register(r)
	return httpserver.Serve(ctx, cfg.Port, r, log)
}
