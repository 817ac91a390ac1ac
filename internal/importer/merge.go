// =============================================================================
// CMMC Assessment Importer - Merge/Apply Stage
// =============================================================================
//
// This module folds the matched rows of a confirmed preview into the three
// persisted maps. Merge semantics are partial-update: a field is only
// overwritten when the imported value is non-empty, so a sparse import
// never erases detail an assessor already recorded.
//
// =============================================================================

package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cmmctools/cmmc-import/internal/store"
)

// Apply merges the matched rows of a preview into the store and appends one
// import-history record. All writes happen in a single store transaction.
func (imp *Importer) Apply(p *Preview) (*Summary, error) {
	status, err := imp.store.LoadAssessmentStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment state: %w", err)
	}
	impl, err := imp.store.LoadImplementation()
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment state: %w", err)
	}
	rem, err := imp.store.LoadRemediation()
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment state: %w", err)
	}

	updated := 0
	for _, row := range p.Matched {
		// Assessment status: overwrite-on-present. An unknown status is
		// skipped, not coerced; the row still merges its text fields.
		if row.Status != StatusUnknown {
			status[row.ObjectiveID] = string(row.Status)
			updated++
		}

		if row.HasImplementationDetail() {
			e := impl[row.ObjectiveID]
			overwriteIfPresent(&e.Description, row.Implementation)
			overwriteIfPresent(&e.Evidence, row.Evidence)
			overwriteIfPresent(&e.Notes, row.Notes)
			overwriteIfPresent(&e.Responsible, row.Responsible)
			impl[row.ObjectiveID] = e
		}

		if row.RemediationStatus != "" {
			e := rem[row.ObjectiveID]
			e.Status = NormalizeRemediationStatus(row.RemediationStatus)
			overwriteIfPresent(&e.DueDate, row.RemediationDueDate)
			overwriteIfPresent(&e.Milestone, row.RemediationMilestone)
			rem[row.ObjectiveID] = e
		}
	}

	record := store.HistoryRecord{
		ID:        uuid.New().String(),
		Date:      time.Now(),
		Source:    p.Source,
		Matched:   len(p.Matched),
		Unmatched: len(p.Unmatched),
		Updated:   updated,
	}

	if err := imp.store.SaveMerge(status, impl, rem, record); err != nil {
		return nil, fmt.Errorf("failed to persist merge: %w", err)
	}

	imp.log.Info("import merged",
		zap.String("source", p.Source),
		zap.String("record_id", record.ID),
		zap.Int("matched", record.Matched),
		zap.Int("unmatched", record.Unmatched),
		zap.Int("updated", record.Updated),
	)

	return &Summary{
		RecordID:      record.ID,
		Matched:       record.Matched,
		Unmatched:     record.Unmatched,
		Updated:       updated,
		UnknownStatus: p.UnknownStatus,
	}, nil
}

// overwriteIfPresent replaces *dst only when the imported value is
// non-empty. Empty-string means absent here, never "clear the field".
func overwriteIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
