package fsproject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/infra/dotenv"
)

func spec(root string) domain.ProjectSpec {
	return domain.ProjectSpec{Root: root, Config: domain.DefaultConfig()}
}

func TestInitializer_Init_CreatesProjectFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(spec(tmp), false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, ".env.example"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	if _, err := os.Stat(filepath.Join(tmp, ".env")); err == nil {
		t.Fatalf("expected .env to not be created")
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	example := filepath.Join(tmp, ".env.example")
	if err := os.WriteFile(example, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing .env.example: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(spec(tmp), false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(example)
	if err != nil {
		t.Fatalf("read .env.example: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected .env.example preserved, got %q", string(b))
	}

	if err := i.Init(spec(tmp), true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(example)
	if err != nil {
		t.Fatalf("read .env.example after force: %v", err)
	}
	if !strings.Contains(string(b), "WIFI_SSID=") {
		t.Fatalf("expected .env.example overwritten with template, got %q", string(b))
	}
}

func TestInitializer_Init_HonorsConfiguredPaths(t *testing.T) {
	tmp := t.TempDir()

	s := spec(tmp)
	s.Config.Paths.EnvExample = "config/secrets.example"
	s.Config.Paths.Header = "src/gen/Secrets.h"

	if err := NewInitializer().Init(s, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "config", "secrets.example"))

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if !strings.Contains(string(b), "src/gen/Secrets.h") {
		t.Fatalf("expected header path ignored, got:\n%s", b)
	}
}

func TestEnvExample_ParsesToEverySchemaKey(t *testing.T) {
	env, err := dotenv.Parse(strings.NewReader(EnvExample()))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	for _, k := range domain.RequiredKeys {
		if _, ok := env.Get(k); !ok {
			t.Errorf("expected %s in template", k)
		}
	}
	for _, d := range domain.OptionalDefaults {
		if _, ok := env.Get(d.Key); ok {
			t.Errorf("expected optional %s to be commented out", d.Key)
		}
	}

	if missing := domain.MissingKeys(env); len(missing) != len(domain.RequiredKeys)-1 {
		t.Fatalf("expected only the port pre-filled, missing=%v", missing)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
