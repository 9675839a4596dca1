package ports

import "github.com/aalvaropc/fwkit/internal/domain"

// EnvFileLoader reads a KEY=VALUE environment file.
type EnvFileLoader interface {
	LoadEnvFile(path string) (*domain.Env, error)
}
