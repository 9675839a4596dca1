package domain

// Config represents the fwkit configuration loaded from fwkit.yaml.
type Config struct {
	Paths PathsConfig
}

// PathsConfig holds project-relative paths.
type PathsConfig struct {
	EnvFile    string
	EnvExample string
	Header     string
}

// DefaultConfig provides sane defaults if fwkit.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			EnvFile:    ".env",
			EnvExample: ".env.example",
			Header:     "include/Secrets.h",
		},
	}
}

// ProjectSpec describes a project to initialize.
type ProjectSpec struct {
	Root   string
	Config Config
}
