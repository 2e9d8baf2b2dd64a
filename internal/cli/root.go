package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/webinit-labs/webinit/internal/branding"
	"github.com/webinit-labs/webinit/internal/config"
	"github.com/webinit-labs/webinit/internal/project"
	"github.com/webinit-labs/webinit/internal/prompt"
	"github.com/webinit-labs/webinit/internal/wizard"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [dir]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks for a project name, a CSS framework, optional CSS libraries and a
jQuery version, then creates an assets/ skeleton and an index.html that links
the chosen CDN files with subresource-integrity hashes.

The project is created in the current directory, or in [dir] when given.
An existing index.html is never overwritten.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScaffold,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func runScaffold(cmd *cobra.Command, args []string) error {
	config.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}
	loc, err := project.Resolve(cwd, dir)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	printBanner(out)

	fs := afero.NewOsFs()
	if dir != "" {
		if err := fs.MkdirAll(loc.RootDir, 0755); err != nil {
			return fmt.Errorf("creating project directory %s: %w", loc.RootDir, err)
		}
	}

	summary, err := wizard.Run(wizard.Options{
		FS:               fs,
		Location:         loc,
		Catalog:          cat,
		Prompter:         prompt.New(cmd.InOrStdin(), out),
		Out:              out,
		Err:              errOut,
		DefaultFramework: config.Get(config.KeyDefaultFramework),
		DefaultJQuery:    config.Get(config.KeyDefaultJQuery),
	})
	if err != nil {
		return err
	}

	if summary.Failed() {
		fmt.Fprintln(errOut, "\nWarning: some files could not be created; see the errors above.")
		return nil
	}
	fmt.Fprintf(out, "\nProject %q is ready in %s\n", summary.Selections.ProjectName, loc.RootDir)
	return nil
}
