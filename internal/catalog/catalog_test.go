package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeID_SuffixSpellingsAreEquivalent(t *testing.T) {
	// Bracket, paren, and dot suffixes all normalize to the same id.
	for _, raw := range []string{"3.1.1[a]", "3.1.1(a)", "3.1.1.a"} {
		assert.Equal(t, "3.1.1[a]", NormalizeID(raw, Rev2), "input %q", raw)
	}
}

func TestNormalizeID_SchemePadding(t *testing.T) {
	assert.Equal(t, "03.01.01[a]", NormalizeID("3.1.1[a]", Rev3))
	assert.Equal(t, "3.1.1[a]", NormalizeID("03.01.01[a]", Rev2))
	assert.Equal(t, "03.01.22", NormalizeID("3.1.22", Rev3))
	assert.Equal(t, "3.1.22", NormalizeID("03.01.22", Rev2))
}

func TestNormalizeID_FamilyPrefixStripped(t *testing.T) {
	want := NormalizeID("3.1.1[a]", Rev2)
	assert.Equal(t, want, NormalizeID("AC-3.1.1[a]", Rev2))
	assert.Equal(t, want, NormalizeID("ac-3.1.1[a]", Rev2))
	assert.Equal(t, want, NormalizeID("AC-3.1.1(a)", Rev2))
}

func TestNormalizeID_MalformedPassesThroughSteps1And3(t *testing.T) {
	// Not a dotted numeric id: only prefix stripping and suffix
	// normalization apply.
	assert.Equal(t, "custom-control[a]", NormalizeID("AC-custom-control(a)", Rev2))
	assert.Equal(t, "hello", NormalizeID("  hello  ", Rev2))
	assert.Equal(t, "", NormalizeID("   ", Rev2))
}

func TestNormalizeID_NoSuffix(t *testing.T) {
	assert.Equal(t, "3.1.20", NormalizeID("3.1.20", Rev2))
	assert.Equal(t, "3.1.20", NormalizeID("AC-03.01.20", Rev2))
}

func TestBuiltinCatalog(t *testing.T) {
	cat := Builtin(Rev2)

	assert.True(t, cat.Has("3.1.1[a]"))
	assert.True(t, cat.Has("3.1.22[d]"))
	assert.False(t, cat.Has("3.1.1[z]"))
	assert.False(t, cat.Has("9.9.9"))
	assert.Greater(t, cat.Len(), 50)

	// The same catalog under rev3 holds only padded ids.
	cat3 := Builtin(Rev3)
	assert.True(t, cat3.Has("03.01.01[a]"))
	assert.False(t, cat3.Has("3.1.1[a]"))
}

func TestBuiltinCatalog_ObjectivesCarryControlMetadata(t *testing.T) {
	cat := Builtin(Rev2)
	objs := cat.Objectives()
	require.NotEmpty(t, objs)

	first := objs[0]
	assert.Equal(t, "3.1.1[a]", first.ID)
	assert.Equal(t, "3.1.1", first.ControlID)
	assert.NotEmpty(t, first.ControlName)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := `
controls:
  - id: "3.4.1"
    family: CM
    name: "Establish and maintain baseline configurations"
    objectives: [a, b, c]
  - id: "3.4.2"
    family: CM
    name: "Enforce security configuration settings"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cat, err := Load(path, Rev2)
	require.NoError(t, err)

	assert.Equal(t, 4, cat.Len())
	assert.True(t, cat.Has("3.4.1[b]"))
	// A control without objectives contributes its own id.
	assert.True(t, cat.Has("3.4.2"))
}

func TestLoadCatalogFile_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Rev2)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("controls: []\n"), 0644))
	_, err = Load(path, Rev2)
	assert.Error(t, err)
}

func TestParseRevision(t *testing.T) {
	assert.Equal(t, Rev2, ParseRevision("rev2"))
	assert.Equal(t, Rev2, ParseRevision(""))
	assert.Equal(t, Rev2, ParseRevision("anything"))
	assert.Equal(t, Rev3, ParseRevision("rev3"))
	assert.Equal(t, Rev3, ParseRevision("R3"))
	assert.Equal(t, Rev3, ParseRevision("3"))
}
