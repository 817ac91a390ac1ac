// =============================================================================
// CMMC Assessment Importer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI.
//
// COBRA CLI STRUCTURE:
//   rootCmd (cmmc-import)
//   ├── importCmd   (cmmc-import import)
//   ├── templateCmd (cmmc-import template)
//   ├── historyCmd  (cmmc-import history)
//   └── versionCmd  (cmmc-import version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmmctools/cmmc-import/internal/catalog"
	"github.com/cmmctools/cmmc-import/internal/config"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cmmc-import",
	Short: "CMMC Assessment Importer - Merge assessment spreadsheets into a local assessment store",

	Long: `CMMC Assessment Importer reads assessment spreadsheets (CSV or XLSX),
matches each row to a canonical NIST SP 800-171 assessment objective, and
merges matched rows into a local SQLite assessment store.

Columns are matched heuristically from the header row, so exports from
different tools import without any mapping setup. Objective identifiers in
either the rev 2 (3.1.1[a]) or rev 3 (03.01.01[a]) numbering are normalized
to the configured revision. Nothing is written without a preview: the
import command shows matched/unmatched counts and asks for confirmation.

Example Usage:
  cmmc-import import --file assessment.csv   # Preview and merge an import file
  cmmc-import import --file sprs.xlsx --yes  # Merge without the confirmation prompt
  cmmc-import template -o template.csv       # Emit a blank import template
  cmmc-import history                        # List past imports`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadCatalog loads the configured catalog file, or the built-in 800-171
// Access Control subset when none is configured.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	rev := catalog.ParseRevision(cfg.Revision)
	if cfg.CatalogPath == "" {
		return catalog.Builtin(rev), nil
	}
	return catalog.Load(cfg.CatalogPath, rev)
}
