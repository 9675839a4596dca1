package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/infra/dotenv"
	"github.com/aalvaropc/fwkit/internal/infra/envconfig"
	"github.com/aalvaropc/fwkit/internal/infra/headerfile"
	"github.com/aalvaropc/fwkit/internal/infra/logger"
	"github.com/aalvaropc/fwkit/internal/infra/projectfinder"
	"github.com/aalvaropc/fwkit/internal/ports"
)

type projectCtx struct {
	root string
	cfg  domain.Config

	loader ports.EnvFileLoader
	header ports.HeaderWriter

	closeLog func() error
}

// pathFlags are per-command overrides of the configured paths.
type pathFlags struct {
	envFile string
	header  string
}

// loadProject resolves the project root, layers configuration
// (fwkit.yaml < process env < flags) and starts the file logger.
func loadProject(opts *rootOptions, pf pathFlags) (*projectCtx, error) {
	ov, err := envconfig.Load()
	if err != nil {
		return nil, err
	}

	root, err := resolveProjectRoot(opts.project, ov.ProjectDir, projectfinder.NewFinder())
	if err != nil {
		return nil, err
	}

	cfg, err := projectfinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	cfg = ov.Apply(cfg)
	if v := strings.TrimSpace(pf.envFile); v != "" {
		cfg.Paths.EnvFile = v
	}
	if v := strings.TrimSpace(pf.header); v != "" {
		cfg.Paths.Header = v
	}

	// Logging is best effort; a read-only tree must not fail the build.
	closeLog, _ := logger.Setup(logger.Config{
		Root:  root,
		Debug: opts.debug || ov.Debug,
	})
	log := logger.L()
	log.Debug("project.loaded", "root", root, "env_file", cfg.Paths.EnvFile, "header", cfg.Paths.Header)

	return &projectCtx{
		root:     root,
		cfg:      cfg,
		loader:   dotenv.NewLoader(dotenv.WithLogger(log)),
		header:   headerfile.NewWriter(),
		closeLog: closeLog,
	}, nil
}

func (p *projectCtx) close() {
	if p != nil && p.closeLog != nil {
		_ = p.closeLog()
	}
}

func (p *projectCtx) envPath() string {
	return p.abs(p.cfg.Paths.EnvFile)
}

func (p *projectCtx) headerPath() string {
	return p.abs(p.cfg.Paths.Header)
}

func (p *projectCtx) abs(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

// resolveProjectRoot picks, in order: the --project flag, the build-system
// PROJECT_DIR, the nearest directory holding a project marker, and finally
// the working directory.
func resolveProjectRoot(flagDir, buildDir string, locator ports.ProjectLocator) (string, error) {
	for _, d := range []string{flagDir, buildDir} {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		abs, err := filepath.Abs(d)
		if err != nil {
			return "", fmt.Errorf("invalid project path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if locator != nil {
		if root, ferr := locator.FindRoot(wd); ferr == nil && root != "" {
			return root, nil
		}
	}
	return filepath.Abs(wd)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
