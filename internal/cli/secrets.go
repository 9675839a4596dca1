package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/fwkit/internal/domain"
	"github.com/aalvaropc/fwkit/internal/infra/logger"
	"github.com/aalvaropc/fwkit/internal/ui/console"
	"github.com/aalvaropc/fwkit/internal/usecase"
)

const (
	reporterPrefix = "secrets"
	maskValue      = "********"
)

func secretsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "secrets",
		Short: "Generate and inspect the secrets header",
	}

	c.AddCommand(secretsGenerateCmd(opts))
	c.AddCommand(secretsCheckCmd(opts))
	c.AddCommand(secretsShowCmd(opts))
	return c
}

func addPathFlags(c *cobra.Command, pf *pathFlags) {
	c.Flags().StringVar(&pf.envFile, "env-file", "", "Environment file (default .env, relative to project root)")
	c.Flags().StringVar(&pf.header, "header", "", "Generated header (default include/Secrets.h, relative to project root)")
}

// fail prints diagnostics for err and marks it as reported.
func fail(rep *console.Reporter, p *projectCtx, err error) error {
	example := ""
	if p != nil {
		example = p.cfg.Paths.EnvExample
	}
	for _, line := range console.Diagnose(err, example) {
		rep.Error("%s", line)
	}
	logger.L().Error("command.failed", "error", err.Error())
	return &reportedError{err: err}
}

func secretsGenerateCmd(opts *rootOptions) *cobra.Command {
	var pf pathFlags

	c := &cobra.Command{
		Use:   "generate",
		Short: "Validate .env and write the secrets header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := console.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), reporterPrefix)

			p, err := loadProject(opts, pf)
			if err != nil {
				return fail(rep, nil, err)
			}
			defer p.close()

			uc := usecase.NewGenerateHeader(p.loader, p.header, usecase.WithLogger(logger.L()))
			res, err := uc.Execute(cmd.Context(), p.envPath(), p.headerPath())
			if err != nil {
				return fail(rep, p, err)
			}

			rep.Success("Generated %s", res.HeaderPath)
			return nil
		},
	}

	addPathFlags(c, &pf)
	return c
}

func secretsCheckCmd(opts *rootOptions) *cobra.Command {
	var pf pathFlags
	var strict bool
	var reveal bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Validate .env and report whether the header is up to date (no writes)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := console.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), reporterPrefix)

			p, err := loadProject(opts, pf)
			if err != nil {
				return fail(rep, nil, err)
			}
			defer p.close()

			uc := usecase.NewCheckHeader(p.loader, p.header, usecase.WithLogger(logger.L()))
			res, err := uc.Execute(cmd.Context(), p.envPath(), p.headerPath(), reveal)
			if err != nil {
				return fail(rep, p, err)
			}

			rel := relTo(p.root, p.headerPath())
			switch res.Status {
			case usecase.HeaderUpToDate:
				rep.Success("%s is up to date", rel)
				return nil
			case usecase.HeaderMissing:
				rep.Info("%s is missing (run `fwkit secrets generate`)", rel)
			default:
				rep.Info("%s is stale (run `fwkit secrets generate`)", rel)
			}

			if res.Diff != "" {
				rep.Plain(res.Diff)
			}
			if !reveal && res.Status == usecase.HeaderStale && !hasHunks(res.Diff) {
				rep.Info("%s", rep.Faint("only masked values differ; use --reveal to show them"))
			}

			if strict {
				return fail(rep, p, fmt.Errorf("%s is %s", rel, res.Status))
			}
			return nil
		},
	}

	addPathFlags(c, &pf)
	c.Flags().BoolVar(&strict, "strict", false, "Exit 1 when the header is missing or stale")
	c.Flags().BoolVar(&reveal, "reveal", false, "Show secret values in the diff")
	return c
}

func secretsShowCmd(opts *rootOptions) *cobra.Command {
	var pf pathFlags
	var format string
	var reveal bool

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved secrets (sensitive values masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := console.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), reporterPrefix)

			if format != "pretty" && format != "json" && format != "" {
				return fail(rep, nil, fmt.Errorf("unsupported format %q (expected pretty|json)", format))
			}

			p, err := loadProject(opts, pf)
			if err != nil {
				return fail(rep, nil, err)
			}
			defer p.close()

			uc := usecase.NewResolveSecrets(p.loader, usecase.WithLogger(logger.L()))
			res, err := uc.Execute(cmd.Context(), p.envPath())
			if err != nil {
				return fail(rep, p, err)
			}

			return printSecrets(cmd.OutOrStdout(), p.envPath(), res, format, reveal)
		},
	}

	addPathFlags(c, &pf)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&reveal, "reveal", false, "Show sensitive values")
	return c
}

type shownSecret struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Masked    bool   `json:"masked,omitempty"`
	Defaulted bool   `json:"defaulted,omitempty"`
}

func collectSecrets(res usecase.Resolution, reveal bool) []shownSecret {
	keys := domain.HeaderKeys()
	out := make([]shownSecret, 0, len(keys))
	for _, k := range keys {
		s := shownSecret{
			Key:       k,
			Value:     res.Env.Value(k),
			Defaulted: slices.Contains(res.Defaulted, k),
		}
		if !reveal && domain.IsSensitiveKey(k) {
			s.Value = maskValue
			s.Masked = true
		}
		out = append(out, s)
	}
	return out
}

func printSecrets(w io.Writer, envPath string, res usecase.Resolution, format string, reveal bool) error {
	secrets := collectSecrets(res, reveal)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"env_file": envPath,
			"secrets":  secrets,
		})
	case "pretty", "":
		width := 0
		for _, s := range secrets {
			width = max(width, len(s.Key))
		}
		fmt.Fprintf(w, "Env file: %s\n\n", envPath)
		for _, s := range secrets {
			suffix := ""
			if s.Defaulted {
				suffix = "  (default)"
			}
			fmt.Fprintf(w, "%-*s = %s%s\n", width, s.Key, s.Value, suffix)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// hasHunks reports whether a unified diff contains changed lines.
func hasHunks(diff string) bool {
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			return true
		}
	}
	return false
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
