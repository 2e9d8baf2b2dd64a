package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/webinit-labs/webinit/internal/catalog"
	"github.com/webinit-labs/webinit/internal/config"
)

var catalogHashAlgo string

func init() {
	catalogHashCmd.Flags().StringVar(&catalogHashAlgo, "algo", catalog.AlgoSHA384, "Digest algorithm: sha256, sha384 or sha512")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogHashCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the asset catalog",
	Long: `Inspect the frameworks, libraries and jQuery builds offered when scaffolding.

The built-in catalog can be replaced with a YAML file of the same shape:
  webinit config set catalog /path/to/catalog.yaml`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the assets of the active catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), cat)
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against the schema and entry rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		result, err := catalog.ValidateFile(path)
		if err != nil {
			return err
		}
		if !result.Valid {
			out := cmd.ErrOrStderr()
			fmt.Fprintf(out, "%s is not a valid catalog:\n", path)
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  - %s\n", issue)
			}
			return fmt.Errorf("%d schema issue(s) in %s", len(result.Issues), path)
		}
		if _, err := catalog.LoadFile(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid catalog.\n", path)
		return nil
	},
}

var catalogHashCmd = &cobra.Command{
	Use:   "hash <file>",
	Short: "Print the subresource-integrity digest of a local file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()

		digest, err := catalog.Integrity(f, catalogHashAlgo)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), digest)
		return nil
	},
}

// loadCatalog returns the user catalog named in config, or the built-in one.
func loadCatalog() (*catalog.Catalog, error) {
	if path := config.Get(config.KeyCatalog); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Default()
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	printEntries(w, "Frameworks", cat.Frameworks)
	printEntries(w, "Libraries", cat.Libraries)

	fmt.Fprintln(w, "jQuery:")
	for _, j := range cat.JQuery {
		fmt.Fprintf(w, "  %-14s %-8s %s\n", j.Name, j.Version, j.Script.URL)
	}
}

func printEntries(w io.Writer, title string, entries []catalog.Entry) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %-14s %-8s %s\n", e.Name, e.Version, e.Stylesheet.URL)
		if e.Script != nil {
			fmt.Fprintf(w, "  %-14s %-8s %s\n", "", "", e.Script.URL)
		}
	}
}
