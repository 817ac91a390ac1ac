// =============================================================================
// CMMC Assessment Importer - Template Command
// =============================================================================
//
// This file defines the 'template' command, which emits a blank import
// template: one row per catalog objective with the control id and name
// filled in and all other columns empty.
//
// COMMAND USAGE:
//   cmmc-import template [-o output.csv]
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmmctools/cmmc-import/internal/config"
	"github.com/cmmctools/cmmc-import/internal/export"
)

// templateOut is the template output path; "-" writes to stdout.
var templateOut string

// templateCmd represents the 'template' command.
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Emit a blank import template for the configured catalog",
	Long: `The template command writes a CSV file with one row per assessment
objective in the configured catalog. Headers are named so the column
resolver maps them back exactly, making the template a guaranteed-valid
starting point for an import file.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplate()
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateOut, "output", "o", "template.csv", `Output path ("-" for stdout)`)
}

func runTemplate() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if templateOut == "-" {
		return export.WriteTemplate(os.Stdout, cat)
	}

	f, err := os.Create(templateOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", templateOut, err)
	}
	defer f.Close()

	if err := export.WriteTemplate(f, cat); err != nil {
		return err
	}

	fmt.Printf("Wrote template with %d objectives to %s\n", cat.Len(), templateOut)
	return nil
}
