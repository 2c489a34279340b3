// Package token parses token service flags and launches the service.
package token

import (
	"context"
	"flag"

	entrypoint "github.com/incalabs/coinwrap/internal/platform/cmd"
	server "github.com/incalabs/coinwrap/internal/services/token/app"
)

// Config holds token command configuration.
type Config struct {
	Port int `env:"COINWRAP_TOKEN_PORT" envDefault:"8090"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The token gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the token gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceToken, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
