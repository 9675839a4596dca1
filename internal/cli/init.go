package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/fwkit/internal/infra/fsproject"
	"github.com/aalvaropc/fwkit/internal/ui/console"
	"github.com/aalvaropc/fwkit/internal/usecase"
)

func initCmd(opts *rootOptions) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write .env.example and git-ignore local secrets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := console.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), "init")

			p, err := loadProject(opts, pathFlags{})
			if err != nil {
				return fail(rep, nil, err)
			}
			defer p.close()

			example := p.abs(p.cfg.Paths.EnvExample)
			existed := fileExists(example)

			uc := usecase.NewInitProject(fsproject.NewInitializer())
			if err := uc.Execute(p.root, p.cfg, force); err != nil {
				return fail(rep, p, err)
			}

			switch {
			case existed && !force:
				rep.Info("%s already exists (use --force to overwrite)", relTo(p.root, example))
			default:
				rep.Success("Wrote %s", relTo(p.root, example))
			}
			rep.Info("Updated .gitignore")

			if !fileExists(p.envPath()) {
				rep.Info("Next: copy %s to %s and fill in values.", p.cfg.Paths.EnvExample, p.cfg.Paths.EnvFile)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing .env.example")
	return c
}
