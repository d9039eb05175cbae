// Package gateway runs the API gateway.
package gateway

import (
	"context"
	"errors"
	"flag"
	"time"

	"travelassistant/internal/platform/config"
	"travelassistant/internal/platform/httpserver"
	"travelassistant/internal/platform/logging"
	"travelassistant/internal/services/gateway"
)

const (
	serviceName   = "gateway"
	limiterIdle   = 10 * time.Minute
	limiterSweeps = time.Minute
)

// Config holds gateway command configuration.
type Config struct {
	config.Common
	Port            int           `env:"SERVICE_PORT" envDefault:"8000"`
	SecretKey       string        `env:"SECRET_KEY"`
	TokenTTLMinutes int           `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
	TranslationURL  string        `env:"TRANSLATION_SERVICE_URL" envDefault:"http://localhost:8001"`
	MapURL          string        `env:"MAP_SERVICE_URL" envDefault:"http://localhost:8002"`
	PackingURL      string        `env:"PACKING_SERVICE_URL" envDefault:"http://localhost:8003"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
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
	if cfg.SecretKey == "" {
		return Config{}, errors.New("SECRET_KEY is required")
	}
	return cfg, nil
}

// Run serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	log := logging.New(serviceName, cfg.LogLevel)

	users, err := gateway.NewDemoDirectory(cfg.BcryptCost)
	if err != nil {
		return err
	}
	tokens := gateway.NewTokenIssuer(cfg.SecretKey, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	var limiter *gateway.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = gateway.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, limiterIdle)
		go limiter.RunSweeper(ctx, limiterSweeps)
	}

	g := gateway.New(log, users, tokens, limiter, gateway.Upstreams{
		Translation: gateway.NewUpstream("translation", cfg.TranslationURL, cfg.UpstreamTimeout),
		Map:         gateway.NewUpstream("map", cfg.MapURL, cfg.UpstreamTimeout),
		Packing:     gateway.NewUpstream("packing", cfg.PackingURL, cfg.UpstreamTimeout),
	})

	r := httpserver.NewRouter(httpserver.Options{
		Service:     serviceName,
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
	})
	g.Register(r)
	return httpserver.Serve(ctx, cfg.Port, r, log)
}
