// =============================================================================
// CMMC Assessment Importer - Import Command
// =============================================================================
//
// This file defines the 'import' command, which runs the full import
// pipeline for one file.
//
// COMMAND USAGE:
//   cmmc-import import --file <path> [flags]
//
// FLAGS:
//   --file       : Path to the CSV/XLSX file to import (required)
//   --dry-run    : Show the preview and stop; nothing is written
//   --yes        : Skip the confirmation prompt
//
// PIPELINE:
//   1. Load configuration, catalog, and store
//   2. Decode the file (delimited text or workbook first sheet)
//   3. Parse, resolve columns, normalize and match rows
//   4. Show the preview summary and diagnostics
//   5. On confirmation, merge matched rows and append a history record
//   6. Optionally archive the imported file
//
// =============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cmmctools/cmmc-import/internal/config"
	"github.com/cmmctools/cmmc-import/internal/importer"
	"github.com/cmmctools/cmmc-import/internal/logging"
	"github.com/cmmctools/cmmc-import/internal/store"
	"github.com/cmmctools/cmmc-import/internal/tabular"
	"github.com/cmmctools/cmmc-import/pkg/utils"
)

// maxUnmatchedShown caps the unmatched-row diagnostic listing.
const maxUnmatchedShown = 20

var (
	// importFile is the path of the file to import.
	importFile string

	// dryRun shows the preview without merging.
	dryRun bool

	// assumeYes skips the confirmation prompt.
	assumeYes bool
)

// importCmd represents the 'import' command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Preview and merge an assessment spreadsheet into the store",
	Long: `The import command parses an assessment spreadsheet, matches each row to a
canonical assessment objective, and merges matched rows into the local
assessment store.

The merge is partial-update: imported fields only overwrite stored values
when they are non-empty, so a sparse spreadsheet never erases detail that
was already recorded. Unmatched rows are listed for diagnosis and excluded
from the merge. Nothing is written until the preview is confirmed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport()
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importFile, "file", "", "Path to the CSV/XLSX file to import")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the preview without writing anything")
	importCmd.Flags().BoolVar(&assumeYes, "yes", false, "Merge without asking for confirmation")
	importCmd.MarkFlagRequired("file")
}

// runImport orchestrates the import pipeline for one file.
func runImport() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFile, verbose)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Sync()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	imp := importer.New(cat, st, log)
	imp.SetDelimiter(tabular.DelimiterRune(cfg.Delimiter))

	// ==========================================================================
	// STAGE 1: PREVIEW
	// ==========================================================================

	preview, err := buildPreview(imp, importFile)
	if err != nil {
		return err
	}

	printPreview(preview)

	if dryRun {
		fmt.Println("\nDry run: nothing was written.")
		return nil
	}

	if len(preview.Matched) == 0 {
		fmt.Println("\nNo rows matched a catalog objective; nothing to merge.")
		return nil
	}

	if !assumeYes && !confirm("Merge these rows into the assessment store?") {
		fmt.Println("Import cancelled; nothing was written.")
		return nil
	}

	// ==========================================================================
	// STAGE 2: MERGE
	// ==========================================================================

	summary, err := imp.Apply(preview)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	fmt.Println("\n=== Import Complete ===")
	fmt.Printf("Statuses updated:  %d\n", summary.Updated)
	fmt.Printf("History record:    %s\n", summary.RecordID)

	if cfg.ArchiveDir != "" {
		dest, err := utils.ArchiveFile(importFile, cfg.ArchiveDir)
		if err != nil {
			// Archival is best-effort; the merge already succeeded.
			log.Warn("failed to archive imported file", zap.Error(err))
		} else {
			fmt.Printf("Archived input to: %s\n", dest)
		}
	}

	return nil
}

// buildPreview decodes the input file per its format and runs the preview
// stages.
func buildPreview(imp *importer.Importer, path string) (*importer.Preview, error) {
	source := path

	switch utils.DetectFormat(path) {
	case utils.FormatWorkbook:
		rows, err := tabular.ReadWorkbook(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read workbook: %w", err)
		}
		return imp.PreviewMatrix(rows, source)

	case utils.FormatDelimited:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return imp.PreviewText(data, source)

	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .csv or .xlsx)", path)
	}
}

// printPreview writes the preview summary and diagnostics to stdout.
func printPreview(p *importer.Preview) {
	fmt.Println("=== Import Preview ===")
	fmt.Printf("Source:          %s\n", p.Source)
	fmt.Printf("Matched rows:    %d\n", len(p.Matched))
	fmt.Printf("Unmatched rows:  %d\n", len(p.Unmatched))
	if p.UnknownStatus > 0 {
		fmt.Printf("Unknown status:  %d (these rows merge their text fields; the status is left unchanged)\n", p.UnknownStatus)
	}

	if len(p.Unmatched) > 0 {
		fmt.Println("\nUnmatched rows (excluded from the merge):")
		for i, row := range p.Unmatched {
			if i == maxUnmatchedShown {
				fmt.Printf("  ... and %d more\n", len(p.Unmatched)-maxUnmatchedShown)
				break
			}
			fmt.Printf("  row %d: %q -> %q not in catalog\n", row.RowNumber, row.RawID, row.ObjectiveID)
		}
	}
}

// confirm prompts on stdin and returns true for a "y"/"yes" answer.
func confirm(prompt string) bool {
	fmt.Printf("\n%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
