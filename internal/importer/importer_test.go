package importer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmctools/cmmc-import/internal/catalog"
	"github.com/cmmctools/cmmc-import/internal/store"
	"github.com/cmmctools/cmmc-import/internal/tabular"
)

func newTestImporter(t *testing.T) (*Importer, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "assessment.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return New(catalog.Builtin(catalog.Rev2), st, nil), st
}

func TestImport_EndToEnd(t *testing.T) {
	imp, st := newTestImporter(t)

	input := "Objective ID,Status,Notes\n3.1.1[a],Met,Reviewed Q1\n"
	p, err := imp.PreviewText([]byte(input), "assessment.csv")
	require.NoError(t, err)

	require.Len(t, p.Matched, 1)
	assert.Empty(t, p.Unmatched)
	assert.Equal(t, "3.1.1[a]", p.Matched[0].ObjectiveID)
	assert.Equal(t, StatusMet, p.Matched[0].Status)
	assert.Equal(t, 2, p.Matched[0].RowNumber)

	sum, err := imp.Apply(p)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Matched)
	assert.Equal(t, 0, sum.Unmatched)
	assert.Equal(t, 1, sum.Updated)

	status, err := st.LoadAssessmentStatus()
	require.NoError(t, err)
	assert.Equal(t, "met", status["3.1.1[a]"])

	impl, err := st.LoadImplementation()
	require.NoError(t, err)
	assert.Equal(t, "Reviewed Q1", impl["3.1.1[a]"].Notes)

	history, err := st.History()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].Matched)
	assert.Equal(t, 0, history[0].Unmatched)
	assert.Equal(t, 1, history[0].Updated)
	assert.Equal(t, "assessment.csv", history[0].Source)
}

func TestImport_PrefixedParenIDStillMatches(t *testing.T) {
	imp, _ := newTestImporter(t)

	input := "Objective ID,Status,Notes\nAC-3.1.1(a),Met,Reviewed Q1\n"
	p, err := imp.PreviewText([]byte(input), "assessment.csv")
	require.NoError(t, err)

	require.Len(t, p.Matched, 1)
	assert.Empty(t, p.Unmatched)
	assert.Equal(t, "3.1.1[a]", p.Matched[0].ObjectiveID)
	assert.Equal(t, "AC-3.1.1(a)", p.Matched[0].RawID)
}

func TestImport_UnmatchedRowsDoNotMutateState(t *testing.T) {
	imp, st := newTestImporter(t)

	input := "Objective ID,Status,Implementation\n9.9.9[z],Met,Fully documented\n"
	p, err := imp.PreviewText([]byte(input), "assessment.csv")
	require.NoError(t, err)

	assert.Empty(t, p.Matched)
	require.Len(t, p.Unmatched, 1)
	assert.Equal(t, "9.9.9[z]", p.Unmatched[0].ObjectiveID)

	_, err = imp.Apply(p)
	require.NoError(t, err)

	status, err := st.LoadAssessmentStatus()
	require.NoError(t, err)
	assert.Empty(t, status)

	impl, err := st.LoadImplementation()
	require.NoError(t, err)
	assert.Empty(t, impl)
}

func TestImport_PartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	imp, st := newTestImporter(t)

	// Seed an implementation entry with description and evidence.
	first := "Objective ID,Status,Implementation,Evidence,Responsible Party\n" +
		"3.1.1[a],Met,MFA enforced via IdP,Screenshot set 4,J. Rivera\n"
	p, err := imp.PreviewText([]byte(first), "first.csv")
	require.NoError(t, err)
	_, err = imp.Apply(p)
	require.NoError(t, err)

	// A notes-only follow-up import must not clear the seeded fields.
	second := "Objective ID,Status,Notes\n3.1.1[a],,Re-reviewed after audit\n"
	p, err = imp.PreviewText([]byte(second), "second.csv")
	require.NoError(t, err)
	sum, err := imp.Apply(p)
	require.NoError(t, err)

	// Empty status means nothing to overwrite, so no row counts as updated.
	assert.Equal(t, 1, sum.Matched)
	assert.Equal(t, 0, sum.Updated)

	status, err := st.LoadAssessmentStatus()
	require.NoError(t, err)
	assert.Equal(t, "met", status["3.1.1[a]"])

	impl, err := st.LoadImplementation()
	require.NoError(t, err)
	e := impl["3.1.1[a]"]
	assert.Equal(t, "MFA enforced via IdP", e.Description)
	assert.Equal(t, "Screenshot set 4", e.Evidence)
	assert.Equal(t, "J. Rivera", e.Responsible)
	assert.Equal(t, "Re-reviewed after audit", e.Notes)
}

func TestImport_RemediationMerge(t *testing.T) {
	imp, st := newTestImporter(t)

	input := "Objective ID,Status,POA&M Status,Due Date,Milestone\n" +
		"3.1.2[a],Not Met,In Progress,2026-11-30,Deploy session proxy\n"
	p, err := imp.PreviewText([]byte(input), "poam.csv")
	require.NoError(t, err)
	_, err = imp.Apply(p)
	require.NoError(t, err)

	rem, err := st.LoadRemediation()
	require.NoError(t, err)
	e := rem["3.1.2[a]"]
	assert.Equal(t, RemediationInProgress, e.Status)
	assert.Equal(t, "2026-11-30", e.DueDate)
	assert.Equal(t, "Deploy session proxy", e.Milestone)
}

func TestImport_UnknownStatusCountedButNotApplied(t *testing.T) {
	imp, st := newTestImporter(t)

	input := "Objective ID,Status,Notes\n3.1.1[a],pending review,Check next cycle\n"
	p, err := imp.PreviewText([]byte(input), "assessment.csv")
	require.NoError(t, err)

	require.Len(t, p.Matched, 1)
	assert.Equal(t, 1, p.UnknownStatus)

	sum, err := imp.Apply(p)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Updated)
	assert.Equal(t, 1, sum.UnknownStatus)

	// The status map stays untouched while the notes still merge.
	status, err := st.LoadAssessmentStatus()
	require.NoError(t, err)
	assert.Empty(t, status)

	impl, err := st.LoadImplementation()
	require.NoError(t, err)
	assert.Equal(t, "Check next cycle", impl["3.1.1[a]"].Notes)
}

func TestImport_RowsWithoutIDSkipped(t *testing.T) {
	imp, _ := newTestImporter(t)

	input := "Objective ID,Status\n,Met\n3.1.1[a],Met\n"
	p, err := imp.PreviewText([]byte(input), "assessment.csv")
	require.NoError(t, err)

	require.Len(t, p.Matched, 1)
	assert.Empty(t, p.Unmatched)
	// Row numbering counts the skipped row.
	assert.Equal(t, 3, p.Matched[0].RowNumber)
}

func TestImport_HeaderOnlyIsNoData(t *testing.T) {
	imp, _ := newTestImporter(t)

	_, err := imp.PreviewText([]byte("Objective ID,Status\n"), "empty.csv")
	assert.True(t, errors.Is(err, tabular.ErrNoData))

	_, err = imp.PreviewText(nil, "empty.csv")
	assert.True(t, errors.Is(err, tabular.ErrNoData))
}

func TestImport_MatrixInput(t *testing.T) {
	imp, _ := newTestImporter(t)

	rows := [][]string{
		{"Objective ID", "Status"},
		{"", ""},
		{"3.1.1[b]", "Partial"},
	}
	p, err := imp.PreviewMatrix(rows, "workbook.xlsx")
	require.NoError(t, err)

	require.Len(t, p.Matched, 1)
	assert.Equal(t, "3.1.1[b]", p.Matched[0].ObjectiveID)
	assert.Equal(t, StatusPartial, p.Matched[0].Status)
}

func TestImport_AltDelimiter(t *testing.T) {
	imp, _ := newTestImporter(t)
	imp.SetDelimiter(';')

	p, err := imp.PreviewText([]byte("Objective ID;Status\n3.1.1[a];Met\n"), "assessment.txt")
	require.NoError(t, err)
	require.Len(t, p.Matched, 1)
	assert.Equal(t, StatusMet, p.Matched[0].Status)
}

func TestImport_LaterDuplicateWins(t *testing.T) {
	imp, st := newTestImporter(t)

	input := "Objective ID,Status\n3.1.1[a],Not Met\n3.1.1[a],Met\n"
	p, err := imp.PreviewText([]byte(input), "assessment.csv")
	require.NoError(t, err)
	require.Len(t, p.Matched, 2)

	_, err = imp.Apply(p)
	require.NoError(t, err)

	status, err := st.LoadAssessmentStatus()
	require.NoError(t, err)
	assert.Equal(t, "met", status["3.1.1[a]"])
}
