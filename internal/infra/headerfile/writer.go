package headerfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/ports"
)

type Writer struct {
	dirMode  fs.FileMode
	fileMode fs.FileMode
}

type Option func(*Writer)

// WithFileMode sets the permission bits of the written header.
func WithFileMode(mode fs.FileMode) Option {
	return func(w *Writer) { w.fileMode = mode }
}

func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		dirMode:  0o755,
		fileMode: 0o644,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ ports.HeaderWriter = (*Writer)(nil)

// WriteHeader creates the parent directory if needed and replaces any file
// at path with content.
func (w *Writer) WriteHeader(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, w.dirMode); err != nil {
		return &domain.OpError{
			Op:   "headerfile.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	// Write to a sibling temp file and rename so a build never sees a
	// half-written header.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &domain.OpError{
			Op:   "headerfile.write",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &domain.OpError{
			Op:   "headerfile.write",
			Kind: domain.KindExecution,
			Path: tmpPath,
			Err:  err,
		}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &domain.OpError{
			Op:   "headerfile.write",
			Kind: domain.KindExecution,
			Path: tmpPath,
			Err:  err,
		}
	}
	if err := os.Chmod(tmpPath, w.fileMode); err != nil {
		_ = os.Remove(tmpPath)
		return &domain.OpError{
			Op:   "headerfile.chmod",
			Kind: domain.KindExecution,
			Path: tmpPath,
			Err:  err,
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &domain.OpError{
			Op:   "headerfile.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// ReadHeader returns the current header content. A missing file is
// reported as KindNotFound.
func (w *Writer) ReadHeader(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "headerfile.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}
