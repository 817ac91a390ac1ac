// =============================================================================
// CMMC Assessment Importer - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CMMC Assessment Importer CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   cmmc-import import --file <path>  - Preview and merge an assessment spreadsheet
//   cmmc-import template              - Emit a blank import template
//   cmmc-import history               - List past imports
//   cmmc-import version               - Display the application version
//
// ARCHITECTURE:
//   cmd/        : CLI command definitions (Cobra)
//   internal/   : Core business logic (catalog, tabular, resolver, importer, store)
//   pkg/        : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/cmmctools/cmmc-import/cmd"
)

func main() {
	cmd.Execute()
}
