package ports

import "github.com/aalvaropc/fwkit/internal/domain"

type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) error
}
