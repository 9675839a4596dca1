package projectfinder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/fwkit/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads fwkit.yaml from the project root and applies defaults.
// A missing file is not an error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	p := y.Fwkit.Paths
	if v := strings.TrimSpace(p.EnvFile); v != "" {
		cfg.Paths.EnvFile = v
	}
	if v := strings.TrimSpace(p.EnvExample); v != "" {
		cfg.Paths.EnvExample = v
	}
	if v := strings.TrimSpace(p.Header); v != "" {
		cfg.Paths.Header = v
	}

	return cfg, nil
}

type yamlConfig struct {
	Fwkit struct {
		Paths struct {
			EnvFile    string `yaml:"env_file"`
			EnvExample string `yaml:"env_example"`
			Header     string `yaml:"header"`
		} `yaml:"paths"`
	} `yaml:"fwkit"`
}
