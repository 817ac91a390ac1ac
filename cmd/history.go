// =============================================================================
// CMMC Assessment Importer - History Command
// =============================================================================
//
// This file defines the 'history' command, which lists the append-only
// import-history records from the assessment store.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmmctools/cmmc-import/internal/config"
	"github.com/cmmctools/cmmc-import/internal/store"
)

// historyCmd represents the 'history' command.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past imports",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	records, err := st.History()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No imports recorded.")
		return nil
	}

	fmt.Printf("%-25s %-8s %-10s %-8s %s\n", "DATE", "MATCHED", "UNMATCHED", "UPDATED", "SOURCE")
	for _, r := range records {
		fmt.Printf("%-25s %-8d %-10d %-8d %s\n",
			r.Date.Local().Format("2006-01-02 15:04:05"),
			r.Matched, r.Unmatched, r.Updated, r.Source)
	}
	return nil
}
