package fsproject

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/ports"
)

// exampleValues pre-fills non-secret keys in .env.example.
var exampleValues = map[string]string{
	domain.PortKey: "1883",
}

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

// Init writes the environment template and git-ignores local secrets.
// The environment file itself is never created or modified.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	paths := spec.Config.Paths

	if err := os.MkdirAll(root, 0o755); err != nil {
		return &domain.OpError{Op: "fsproject.mkdir", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := ensureGitignore(root, gitignoreEntries(paths)); err != nil {
		return &domain.OpError{Op: "fsproject.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, paths.EnvExample)
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return &domain.OpError{Op: "fsproject.stat", Kind: domain.KindExecution, Path: dst, Err: err}
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return &domain.OpError{Op: "fsproject.mkdir", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	if err := os.WriteFile(dst, []byte(EnvExample()), 0o644); err != nil {
		return &domain.OpError{Op: "fsproject.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}

// EnvExample renders the .env.example template from the secrets schema.
func EnvExample() string {
	var b strings.Builder
	b.WriteString("# Copy this file to .env and fill in values.\n")
	b.WriteString("# .env is git-ignored; never commit real credentials.\n\n")
	for _, k := range domain.RequiredKeys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(exampleValues[k])
		b.WriteByte('\n')
	}
	b.WriteString("\n# Optional\n")
	for _, d := range domain.OptionalDefaults {
		b.WriteString("# ")
		b.WriteString(d.Key)
		b.WriteByte('=')
		b.WriteString(d.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

func gitignoreEntries(paths domain.PathsConfig) []string {
	return []string{
		filepath.ToSlash(filepath.Clean(paths.EnvFile)),
		filepath.ToSlash(filepath.Clean(paths.Header)),
		".fwkit/",
	}
}

func ensureGitignore(root string, entries []string) error {
	const header = "# fwkit"

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
