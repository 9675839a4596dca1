package dotenv

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/ports"
)

const maxLineSize = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Loader struct {
	logger *slog.Logger
}

type Option func(*Loader)

// WithLogger receives debug events for lines that were ignored.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.EnvFileLoader = (*Loader)(nil)

// LoadEnvFile reads and parses the environment file at path.
func (l *Loader) LoadEnvFile(path string) (*domain.Env, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.OpError{
				Op:   "dotenv.load",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  domain.ErrNotFound,
			}
		}
		return nil, &domain.OpError{
			Op:   "dotenv.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	env, err := parse(bytes.NewReader(b), func(lineNo int, reason string) {
		l.logger.Debug("dotenv.skip_line", "path", path, "line", lineNo, "reason", reason)
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "dotenv.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	l.logger.Debug("dotenv.loaded", "path", path, "keys", env.Len())
	return env, nil
}

// Parse reads KEY=VALUE lines from r. Blank lines, '#' comments and lines
// without '=' are ignored; a leading "export" is dropped; one layer of
// matching single or double quotes is stripped from values.
func Parse(r io.Reader) (*domain.Env, error) {
	return parse(r, nil)
}

func parse(r io.Reader, onSkip func(lineNo int, reason string)) (*domain.Env, error) {
	env := domain.NewEnv()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Bytes()
		if lineNo == 1 {
			raw = bytes.TrimPrefix(raw, utf8BOM)
		}

		key, value, ok, reason := parseLine(string(raw))
		if !ok {
			if reason != "" && onSkip != nil {
				onSkip(lineNo, reason)
			}
			continue
		}
		env.Set(key, value)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return env, nil
}

// parseLine returns ok=false for lines that carry no assignment. reason is
// empty for lines that are skipped silently (blank, comment).
func parseLine(raw string) (key, value string, ok bool, reason string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false, ""
	}

	if rest, found := cutExport(line); found {
		line = rest
	}

	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false, "missing '='"
	}

	key = strings.TrimSpace(k)
	if key == "" {
		return "", "", false, "empty key"
	}

	return key, unquote(strings.TrimSpace(v)), true, ""
}

func cutExport(line string) (string, bool) {
	const kw = "export"
	if !strings.HasPrefix(line, kw) || len(line) == len(kw) {
		return line, false
	}
	if c := line[len(kw)]; c != ' ' && c != '\t' {
		return line, false
	}
	return strings.TrimSpace(line[len(kw):]), true
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if (first == '"' || first == '\'') && first == last {
		return v[1 : len(v)-1]
	}
	return v
}
