package usecase

import (
	"context"
	"regexp"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/aalvaropc/fwkit/internal/app/template"
	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/ports"
)

const maskValue = "********"

type HeaderStatus string

const (
	HeaderUpToDate HeaderStatus = "up to date"
	HeaderMissing  HeaderStatus = "missing"
	HeaderStale    HeaderStatus = "stale"
)

type CheckResult struct {
	Status HeaderStatus
	// Diff is a unified diff from the header on disk to the generated one.
	// Empty when up to date.
	Diff string
	Env  *domain.Env
}

// CheckHeader validates the environment file and compares the header that
// would be generated with the one on disk. It never writes.
type CheckHeader struct {
	resolve *ResolveSecrets
	reader  ports.HeaderWriter
}

func NewCheckHeader(loader ports.EnvFileLoader, reader ports.HeaderWriter, opts ...ResolveOption) *CheckHeader {
	return &CheckHeader{
		resolve: NewResolveSecrets(loader, opts...),
		reader:  reader,
	}
}

// Execute masks sensitive values in the diff unless reveal is set.
func (uc *CheckHeader) Execute(ctx context.Context, envPath, headerPath string, reveal bool) (CheckResult, error) {
	res, err := uc.resolve.Execute(ctx, envPath)
	if err != nil {
		return CheckResult{}, err
	}
	env := res.Env

	want, err := template.RenderHeader(env)
	if err != nil {
		return CheckResult{}, err
	}

	status := HeaderStale
	got, err := uc.reader.ReadHeader(headerPath)
	switch {
	case domain.IsKind(err, domain.KindNotFound):
		status = HeaderMissing
		got = nil
	case err != nil:
		return CheckResult{}, err
	case string(got) == string(want):
		return CheckResult{Status: HeaderUpToDate, Env: env}, nil
	}

	a, b := string(got), string(want)
	if !reveal {
		a, b = maskHeader(a), maskHeader(b)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: headerPath + " (on disk)",
		ToFile:   headerPath + " (generated)",
		Context:  1,
	})
	if err != nil {
		return CheckResult{}, &domain.OpError{
			Op:   "check.diff",
			Kind: domain.KindExecution,
			Path: headerPath,
			Err:  err,
		}
	}

	uc.resolve.logger.Info("secrets.check", "header", headerPath, "status", string(status))
	return CheckResult{Status: status, Diff: diff, Env: env}, nil
}

var reStringConst = regexp.MustCompile(`(?m)^(static const char \*([A-Za-z0-9_]+) = ")(.*)(";)$`)

// maskHeader hides the literals of sensitive constants.
func maskHeader(s string) string {
	return reStringConst.ReplaceAllStringFunc(s, func(line string) string {
		m := reStringConst.FindStringSubmatch(line)
		if !domain.IsSensitiveKey(m[2]) {
			return line
		}
		return m[1] + maskValue + m[4]
	})
}
