package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills the tagged target struct from the process environment.
// Services declare their COINWRAP_* variables with `env` struct tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
