// =============================================================================
// CMMC Assessment Importer - Column Resolver
// =============================================================================
//
// This module maps semantic fields to column indices using the header row of
// an import file. Assessment spreadsheets come from many tools (SPRS export
// sheets, assessor workbooks, home-grown trackers), so matching is by
// keyword substring against lower-cased headers rather than exact names.
//
// The keyword table is declarative data consumed by a pure function, which
// keeps each field's keyword list independently testable. Resolution always
// terminates with best-effort indices; there is no failure mode.
//
// =============================================================================

package resolver

import "strings"

// =============================================================================
// SEMANTIC FIELDS
// =============================================================================

// Field names one semantic column of an import file.
type Field string

const (
	FieldObjectiveID          Field = "objectiveId"
	FieldControlID            Field = "controlId"
	FieldStatus               Field = "status"
	FieldImplementation       Field = "implementation"
	FieldEvidence             Field = "evidence"
	FieldRemediationStatus    Field = "remediationStatus"
	FieldRemediationDueDate   Field = "remediationDueDate"
	FieldRemediationMilestone Field = "remediationMilestone"
	FieldNotes                Field = "notes"
	FieldAssetCategory        Field = "assetCategory"
	FieldResponsible          Field = "responsible"
)

// fieldKeywords is the resolution table. Fields resolve in declaration
// order, and within a field the first header column (left to right)
// containing any keyword as a substring wins.
//
// Order matters across fields too: remediationDueDate is declared before
// remediationMilestone so a "Milestone Date" header lands on the due-date
// column instead of the milestone column.
var fieldKeywords = []struct {
	Field    Field
	Keywords []string
}{
	{FieldObjectiveID, []string{"objective", "obj id", "obj_id", "assessment objective"}},
	{FieldControlID, []string{"control id", "control_id", "ctrl"}},
	{FieldStatus, []string{"status", "result", "finding", "determination"}},
	{FieldImplementation, []string{"implementation", "impl", "how implemented", "description"}},
	{FieldEvidence, []string{"evidence", "artifact", "proof"}},
	{FieldRemediationStatus, []string{"poa&m", "poam", "plan of action"}},
	{FieldRemediationDueDate, []string{"due date", "due_date", "target date", "milestone date"}},
	{FieldRemediationMilestone, []string{"milestone", "remediation"}},
	{FieldNotes, []string{"note", "comment", "remark", "assessor"}},
	{FieldAssetCategory, []string{"asset cat", "asset_cat", "category", "scope"}},
	{FieldResponsible, []string{"responsible", "owner", "party", "assigned"}},
}

// =============================================================================
// COLUMN MAP
// =============================================================================

// ColumnMap maps each resolved field to its zero-based column index.
// Fields with no matching column are absent from the map.
type ColumnMap map[Field]int

// Index returns the column index for a field, or -1 if it did not resolve.
func (m ColumnMap) Index(f Field) int {
	if i, ok := m[f]; ok {
		return i
	}
	return -1
}

// Cell returns the trimmed cell value for a field from a data row, or ""
// when the field is unresolved or the row is short.
func (m ColumnMap) Cell(row []string, f Field) string {
	i := m.Index(f)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Resolution is the resolver output: the column map plus the original
// header row, kept for diagnostics and the import preview.
type Resolution struct {
	Columns ColumnMap
	Header  []string
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve maps semantic fields to column indices using the header row.
//
// FALLBACK POLICY:
//   - objectiveId always resolves: with no keyword match it takes column 0.
//   - status falls back to the first column at index >= 1 not already
//     claimed by another field; if every column is claimed it stays
//     unresolved and each row imports with an empty status.
func Resolve(header []string) Resolution {
	lowered := make([]string, len(header))
	for i, h := range header {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	columns := make(ColumnMap)
	claimed := make(map[int]bool)

	for _, entry := range fieldKeywords {
		if i := findColumn(lowered, entry.Keywords); i >= 0 {
			columns[entry.Field] = i
			claimed[i] = true
		}
	}

	// Objective-id fallback: the first column is the least-bad guess when
	// nothing in the header looks like an objective column.
	if _, ok := columns[FieldObjectiveID]; !ok {
		columns[FieldObjectiveID] = 0
		claimed[0] = true
	}

	// Status fallback: the first otherwise-unclaimed column after the
	// objective column.
	if _, ok := columns[FieldStatus]; !ok {
		for i := 1; i < len(header); i++ {
			if !claimed[i] {
				columns[FieldStatus] = i
				claimed[i] = true
				break
			}
		}
	}

	return Resolution{Columns: columns, Header: header}
}

// findColumn returns the first column whose header contains any of the
// keywords as a substring, or -1.
func findColumn(lowered []string, keywords []string) int {
	for i, h := range lowered {
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return i
			}
		}
	}
	return -1
}
