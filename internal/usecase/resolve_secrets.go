package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/ports"
)

// ResolveSecrets loads the environment file, fills optional defaults and
// validates the result. It never writes anything.
type ResolveSecrets struct {
	loader ports.EnvFileLoader
	logger *slog.Logger
}

type ResolveOption func(*ResolveSecrets)

func WithLogger(l *slog.Logger) ResolveOption {
	return func(uc *ResolveSecrets) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewResolveSecrets(loader ports.EnvFileLoader, opts ...ResolveOption) *ResolveSecrets {
	uc := &ResolveSecrets{
		loader: loader,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Resolution is a validated environment ready for rendering.
type Resolution struct {
	Env *domain.Env
	// Defaulted lists optional keys that took their default value.
	Defaulted []string
}

func (uc *ResolveSecrets) Execute(ctx context.Context, envPath string) (Resolution, error) {
	if err := ctx.Err(); err != nil {
		return Resolution{}, err
	}

	parsed, err := uc.loader.LoadEnvFile(envPath)
	if err != nil {
		return Resolution{}, err
	}

	var defaulted []string
	for _, d := range domain.OptionalDefaults {
		if parsed.Value(d.Key) == "" {
			defaulted = append(defaulted, d.Key)
			uc.logger.Debug("secrets.default_applied", "key", d.Key)
		}
	}
	env := domain.ApplyDefaults(parsed)

	if err := domain.Validate(env); err != nil {
		uc.logger.Info("secrets.invalid", "path", envPath, "error", err.Error())
		return Resolution{}, err
	}
	return Resolution{Env: env, Defaulted: defaulted}, nil
}
