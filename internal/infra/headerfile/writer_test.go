package headerfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/fwkit/internal/domain"
)

func TestWriteHeader_CreatesParentDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "include", "Secrets.h")

	w := NewWriter()
	if err := w.WriteHeader(path, []byte("#pragma once\n")); err != nil {
		t.Fatalf("WriteHeader error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if string(b) != "#pragma once\n" {
		t.Fatalf("unexpected content %q", string(b))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Fatalf("expected mode 644, got %o", got)
	}
}

func TestWriteHeader_ReplacesExisting(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "Secrets.h")
	if err := os.WriteFile(path, []byte("old content that is longer\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w := NewWriter(WithFileMode(0o600))
	if err := w.WriteHeader(path, []byte("new\n")); err != nil {
		t.Fatalf("WriteHeader error: %v", err)
	}

	b, err := w.ReadHeader(path)
	if err != nil {
		t.Fatalf("ReadHeader error: %v", err)
	}
	if string(b) != "new\n" {
		t.Fatalf("expected replaced content, got %q", string(b))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("expected mode 600, got %o", got)
	}
}

func TestWriteHeader_LeavesNoTempFiles(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "Secrets.h")

	w := NewWriter()
	for i := 0; i < 2; i++ {
		if err := w.WriteHeader(path, []byte("x\n")); err != nil {
			t.Fatalf("WriteHeader error: %v", err)
		}
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "Secrets.h" {
		t.Fatalf("expected only Secrets.h, got %v", entries)
	}
}

func TestReadHeader_Missing(t *testing.T) {
	tmp := t.TempDir()

	_, err := NewWriter().ReadHeader(filepath.Join(tmp, "Secrets.h"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
