package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/fwkit/internal/ui/console"
)

type rootOptions struct {
	project string
	debug   bool
}

// reportedError marks an error whose diagnostics were already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var re *reportedError
		if !errors.As(err, &re) {
			console.NewReporter(stdout, stderr, "fwkit").Error("%v", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "fwkit",
		Short:         "fwkit: build tooling for the RGB matrix firmware",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.project, "project", "p", "", "Project root (optional; PROJECT_DIR or autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .fwkit/logs/fwkit.log")

	cmd.AddCommand(secretsCmd(opts))
	cmd.AddCommand(initCmd(opts))
	cmd.AddCommand(versionCmd())
	return cmd
}
