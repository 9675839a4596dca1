package projectfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/ports"
)

// ConfigFile is the optional fwkit configuration at the project root.
const ConfigFile = "fwkit.yaml"

// Finder locates a firmware project root by searching upward for any of
// Markers. The first directory holding a marker wins.
type Finder struct {
	Markers []string // defaults to fwkit.yaml, platformio.ini
}

func NewFinder() *Finder {
	return &Finder{Markers: []string{ConfigFile, "platformio.ini"}}
}

var _ ports.ProjectLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path resolves to its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if f.hasMarker(cur) {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "projectfinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func (f *Finder) hasMarker(dir string) bool {
	for _, m := range f.Markers {
		if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
			return true
		}
	}
	return false
}
