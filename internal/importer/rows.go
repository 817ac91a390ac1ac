// =============================================================================
// CMMC Assessment Importer - Row Types
// =============================================================================
//
// Shared row and preview types for the import pipeline. An ImportRow is
// transient: it is produced while parsing one spreadsheet row, consumed by
// the merge stage, and never persisted itself.
//
// =============================================================================

package importer

import "github.com/cmmctools/cmmc-import/internal/resolver"

// ImportRow is one parsed data row from an import file.
type ImportRow struct {
	// RowNumber is the 1-based row number in the source file, header
	// included, kept for diagnostics.
	RowNumber int

	// RawID is the objective identifier exactly as it appeared.
	RawID string

	// ObjectiveID is the normalized canonical identifier.
	ObjectiveID string

	// Status is the normalized status; StatusUnknown when the raw text
	// matched no keyword group.
	Status Status

	// RawStatus is the status cell exactly as it appeared, for the
	// unknown-status diagnostic display.
	RawStatus string

	// Optional free-text fields. Empty means "absent": an empty imported
	// value never clears a persisted one.
	Implementation       string
	Evidence             string
	RemediationStatus    string
	RemediationDueDate   string
	RemediationMilestone string
	Notes                string
	AssetCategory        string
	Responsible          string
}

// HasImplementationDetail reports whether the row carries anything for the
// implementation map.
func (r ImportRow) HasImplementationDetail() bool {
	return r.Implementation != "" || r.Evidence != "" || r.Notes != "" || r.Responsible != ""
}

// HasUnknownStatus reports whether the row carried status text that
// normalized to nothing valid.
func (r ImportRow) HasUnknownStatus() bool {
	return r.RawStatus != "" && r.Status == StatusUnknown
}

// Preview is the result of the parse/resolve/normalize stages, shown to the
// user before anything is merged.
type Preview struct {
	// Source is the import file name, recorded into the history log.
	Source string

	// Resolution is the resolved column map plus the original header.
	Resolution resolver.Resolution

	// Matched rows, in input order, ready for the merge stage.
	Matched []ImportRow

	// Unmatched rows, in input order. Diagnostic display only; they are
	// excluded from the merge.
	Unmatched []ImportRow

	// UnknownStatus is the number of matched rows whose status text
	// normalized to nothing valid.
	UnknownStatus int
}

// Summary describes one completed merge.
type Summary struct {
	// RecordID is the import-history record identifier.
	RecordID string

	Matched       int
	Unmatched     int
	Updated       int
	UnknownStatus int
}
