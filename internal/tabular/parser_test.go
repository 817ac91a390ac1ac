package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimited_QuotedFields(t *testing.T) {
	rows := ParseDelimited(`id,text
"3.1.1[a]","contains, a comma"
"3.1.1[b]","embedded ""quotes"" here"
`)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "text"}, rows[0])
	assert.Equal(t, []string{"3.1.1[a]", "contains, a comma"}, rows[1])
	assert.Equal(t, []string{"3.1.1[b]", `embedded "quotes" here`}, rows[2])
}

func TestParseDelimited_NewlineInsideQuotedField(t *testing.T) {
	rows := ParseDelimited("id,text\n\"3.1.1[a]\",\"line one\nline two\"\n")

	require.Len(t, rows, 2)
	assert.Equal(t, "line one\nline two", rows[1][1])
}

func TestParseDelimited_LineTerminators(t *testing.T) {
	// \r\n, \r, and \n all terminate a record.
	for _, sep := range []string{"\r\n", "\r", "\n"} {
		rows := ParseDelimited("a,b" + sep + "c,d" + sep + "e,f")
		require.Len(t, rows, 3, "separator %q", sep)
		assert.Equal(t, []string{"c", "d"}, rows[1], "separator %q", sep)
		assert.Equal(t, []string{"e", "f"}, rows[2], "separator %q", sep)
	}
}

func TestParseDelimited_FinalRecordWithoutNewline(t *testing.T) {
	rows := ParseDelimited("a,b\nc,d")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestParseDelimited_UnterminatedQuoteFlushedAtEOF(t *testing.T) {
	rows := ParseDelimited("a,b\nc,\"left open")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"c", "left open"}, rows[1])
}

func TestParseDelimited_BlankRowsDropped(t *testing.T) {
	rows := ParseDelimited("a,b\n\n  ,  \nc,d\n")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestParseDelimited_Empty(t *testing.T) {
	assert.Empty(t, ParseDelimited(""))
	assert.Empty(t, ParseDelimited("\n\n"))
}

func TestParseDelimitedWith_AltDelimiters(t *testing.T) {
	rows := ParseDelimitedWith("a;b\nc;d", ';')
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])

	rows = ParseDelimitedWith("a\tb\nc\td", '\t')
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestCleanMatrix(t *testing.T) {
	rows := CleanMatrix([][]string{
		{"a", "b"},
		{"", "  "},
		{"c"},
		{},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"c"}, rows[1])
}

func TestDelimiterRune(t *testing.T) {
	assert.Equal(t, '\t', DelimiterRune("tab"))
	assert.Equal(t, '\t', DelimiterRune("\\t"))
	assert.Equal(t, '|', DelimiterRune("pipe"))
	assert.Equal(t, ';', DelimiterRune(";"))
	assert.Equal(t, ',', DelimiterRune(""))
	assert.Equal(t, ',', DelimiterRune(","))
}
