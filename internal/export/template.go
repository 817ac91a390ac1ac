// =============================================================================
// CMMC Assessment Importer - Template Export
// =============================================================================
//
// Emits a blank delimited-text import template: one row per catalog
// objective with the control id/name filled in and every other recognized
// column left empty. The header names are chosen so the column resolver
// maps them back without any fallback guessing, which makes the template a
// guaranteed-round-trip starting point for users filling in an import file.
//
// =============================================================================

package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cmmctools/cmmc-import/internal/catalog"
)

// templateHeader lists the template columns in export order.
var templateHeader = []string{
	"Objective ID",
	"Control ID",
	"Control Name",
	"Status",
	"Implementation",
	"Evidence",
	"POA&M Status",
	"Due Date",
	"Milestone",
	"Notes",
	"Asset Category",
	"Responsible Party",
}

// WriteTemplate writes the blank import template for a catalog to w.
func WriteTemplate(w io.Writer, cat *catalog.Catalog) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(templateHeader); err != nil {
		return fmt.Errorf("failed to write template header: %w", err)
	}

	row := make([]string, len(templateHeader))
	for _, obj := range cat.Objectives() {
		for i := range row {
			row[i] = ""
		}
		row[0] = obj.ID
		row[1] = obj.ControlID
		row[2] = obj.ControlName

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write template row for %s: %w", obj.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush template: %w", err)
	}
	return nil
}
