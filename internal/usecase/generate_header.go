package usecase

import (
	"bytes"
	"context"

	"github.com/aalvaropc/fwkit/internal/app/template"
	"github.com/aalvaropc/fwkit/internal/ports"
)

type GenerateHeader struct {
	resolve *ResolveSecrets
	writer  ports.HeaderWriter
}

type GenerateResult struct {
	HeaderPath string
	Content    []byte
	// Changed is false when the previous header had identical content.
	Changed bool
}

func NewGenerateHeader(loader ports.EnvFileLoader, writer ports.HeaderWriter, opts ...ResolveOption) *GenerateHeader {
	return &GenerateHeader{
		resolve: NewResolveSecrets(loader, opts...),
		writer:  writer,
	}
}

// Execute regenerates the header in full. Nothing is written unless the
// environment file is present and valid.
func (uc *GenerateHeader) Execute(ctx context.Context, envPath, headerPath string) (GenerateResult, error) {
	log := uc.resolve.logger
	log.Info("secrets.generate.start", "env", envPath, "header", headerPath)

	res, err := uc.resolve.Execute(ctx, envPath)
	if err != nil {
		return GenerateResult{}, err
	}

	content, err := template.RenderHeader(res.Env)
	if err != nil {
		return GenerateResult{}, err
	}

	changed := true
	if prev, rerr := uc.writer.ReadHeader(headerPath); rerr == nil && bytes.Equal(prev, content) {
		changed = false
	}

	if err := uc.writer.WriteHeader(headerPath, content); err != nil {
		return GenerateResult{}, err
	}

	log.Info("secrets.generate.done", "header", headerPath, "changed", changed, "bytes", len(content))
	return GenerateResult{
		HeaderPath: headerPath,
		Content:    content,
		Changed:    changed,
	}, nil
}
