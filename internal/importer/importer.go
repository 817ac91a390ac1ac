// =============================================================================
// CMMC Assessment Importer - Import Pipeline
// =============================================================================
//
// This module orchestrates the import pipeline for a single file:
//
//   1. Decode and parse the input into rows (tabular)
//   2. Resolve semantic columns from the header row (resolver)
//   3. Normalize and match each data row against the catalog
//   4. Preview: counts and diagnostics, shown before anything is written
//   5. Merge matched rows into the persisted maps (merge.go)
//
// The pipeline is synchronous and single-threaded: one import runs to
// completion per invocation, and the merge stage only runs after the caller
// has confirmed the preview. Everything the pipeline needs is carried on
// the Importer explicitly; there is no ambient package state.
//
// =============================================================================

package importer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cmmctools/cmmc-import/internal/catalog"
	"github.com/cmmctools/cmmc-import/internal/resolver"
	"github.com/cmmctools/cmmc-import/internal/store"
	"github.com/cmmctools/cmmc-import/internal/tabular"
)

// Importer runs the import pipeline against one catalog and one store.
type Importer struct {
	catalog   *catalog.Catalog
	store     *store.Store
	log       *zap.Logger
	delimiter rune
}

// New creates an Importer.
func New(cat *catalog.Catalog, st *store.Store, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{
		catalog:   cat,
		store:     st,
		log:       log,
		delimiter: ',',
	}
}

// SetDelimiter overrides the field delimiter for delimited-text input.
func (imp *Importer) SetDelimiter(d rune) {
	imp.delimiter = d
}

// =============================================================================
// PREVIEW STAGE
// =============================================================================

// PreviewText runs the parse/resolve/normalize stages on raw delimited-text
// bytes. It returns tabular.ErrNoData (wrapped) when the input has no
// header row plus at least one data row.
func (imp *Importer) PreviewText(data []byte, source string) (*Preview, error) {
	text, err := tabular.DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", source, err)
	}
	rows := tabular.ParseDelimitedWith(text, imp.delimiter)
	return imp.preview(rows, source)
}

// PreviewMatrix runs the same stages on an already-decoded cell matrix
// (e.g. a workbook sheet). This path bypasses delimiter handling entirely.
func (imp *Importer) PreviewMatrix(rows [][]string, source string) (*Preview, error) {
	return imp.preview(tabular.CleanMatrix(rows), source)
}

// preview classifies every data row as matched or unmatched.
func (imp *Importer) preview(rows [][]string, source string) (*Preview, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: %w", source, tabular.ErrNoData)
	}

	res := resolver.Resolve(rows[0])
	imp.log.Debug("resolved columns",
		zap.String("source", source),
		zap.Int("header_columns", len(res.Header)),
		zap.Int("resolved_fields", len(res.Columns)),
	)

	p := &Preview{Source: source, Resolution: res}

	for i, row := range rows[1:] {
		rawID := res.Columns.Cell(row, resolver.FieldObjectiveID)
		if rawID == "" {
			// Rows without an objective id are skipped entirely: neither
			// matched nor unmatched, and not counted.
			continue
		}

		rawStatus := res.Columns.Cell(row, resolver.FieldStatus)
		r := ImportRow{
			RowNumber:            i + 2, // 1-based, after the header row
			RawID:                rawID,
			ObjectiveID:          catalog.NormalizeID(rawID, imp.catalog.Revision),
			Status:               NormalizeStatus(rawStatus),
			RawStatus:            rawStatus,
			Implementation:       res.Columns.Cell(row, resolver.FieldImplementation),
			Evidence:             res.Columns.Cell(row, resolver.FieldEvidence),
			RemediationStatus:    res.Columns.Cell(row, resolver.FieldRemediationStatus),
			RemediationDueDate:   res.Columns.Cell(row, resolver.FieldRemediationDueDate),
			RemediationMilestone: res.Columns.Cell(row, resolver.FieldRemediationMilestone),
			Notes:                res.Columns.Cell(row, resolver.FieldNotes),
			AssetCategory:        res.Columns.Cell(row, resolver.FieldAssetCategory),
			Responsible:          res.Columns.Cell(row, resolver.FieldResponsible),
		}

		if !imp.catalog.Has(r.ObjectiveID) {
			p.Unmatched = append(p.Unmatched, r)
			continue
		}

		if r.HasUnknownStatus() {
			p.UnknownStatus++
		}
		p.Matched = append(p.Matched, r)
	}

	imp.log.Info("import preview ready",
		zap.String("source", source),
		zap.Int("matched", len(p.Matched)),
		zap.Int("unmatched", len(p.Unmatched)),
		zap.Int("unknown_status", p.UnknownStatus),
	)

	return p, nil
}
