package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/aalvaropc/fwkit/internal/domain"
)

// Overrides are settings taken from the process environment. PROJECT_DIR is
// exported by PlatformIO when fwkit runs as a pre-build step.
type Overrides struct {
	ProjectDir string `env:"PROJECT_DIR"`
	EnvFile    string `env:"FWKIT_ENV_FILE"`
	Header     string `env:"FWKIT_HEADER"`
	Debug      bool   `env:"FWKIT_DEBUG" envDefault:"false"`
}

// Load reads Overrides from the process environment.
func Load() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, &domain.OpError{
			Op:   "envconfig.load",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}
	return o, nil
}

// Apply layers non-empty overrides onto cfg.
func (o Overrides) Apply(cfg domain.Config) domain.Config {
	if o.EnvFile != "" {
		cfg.Paths.EnvFile = o.EnvFile
	}
	if o.Header != "" {
		cfg.Paths.Header = o.Header
	}
	return cfg
}
