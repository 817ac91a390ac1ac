// =============================================================================
// CMMC Assessment Importer - Tabular Parser
// =============================================================================
//
// This module turns raw delimited text into a sequence of row slices. It is
// deliberately schema-agnostic: every cell stays a string, and all knowledge
// of what the columns mean lives in the resolver.
//
// The dialect accepted here is the one assessment spreadsheets actually
// export:
//   - Fields containing the delimiter or line breaks are wrapped in double
//     quotes.
//   - A literal quote inside a quoted field is written as a doubled quote.
//   - "\r\n", "\r", and "\n" all terminate a record.
//   - A final record without a trailing newline is still emitted, as is a
//     quoted field left unterminated at end of input.
//   - Rows whose every field is empty after trimming are dropped.
//
// Workbook sheets arrive already decoded into a cell matrix; that path
// bypasses delimiter handling entirely and only gets the blank-row filter.
//
// =============================================================================

package tabular

import (
	"errors"
	"strings"
)

// ErrNoData reports that the input produced fewer than a header row plus
// one data row. Callers surface this to the user as a blocking message; no
// partial import happens.
var ErrNoData = errors.New("input has no data rows (need a header row and at least one data row)")

// =============================================================================
// DELIMITED TEXT
// =============================================================================

// ParseDelimited parses comma-delimited text into rows of fields.
func ParseDelimited(text string) [][]string {
	return ParseDelimitedWith(text, ',')
}

// ParseDelimitedWith parses delimited text using the given field delimiter.
//
// The scanner is hand-rolled rather than built on encoding/csv because the
// accepted dialect differs from RFC 4180 in ways the stdlib reader does not
// allow: a lone '\r' terminates a record, all-blank rows are dropped, and a
// quoted field left open at end of input is flushed instead of rejected.
func ParseDelimitedWith(text string, delim rune) [][]string {
	var (
		rows     [][]string
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	flushField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}

	flushRow := func() {
		flushField()
		if !isRowEmpty(fields) {
			rows = append(rows, fields)
		}
		fields = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if inQuotes {
			if ch == '"' {
				// A doubled quote is a literal quote; a single one
				// closes the field.
				if i+1 < len(runes) && runes[i+1] == '"' {
					field.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
				continue
			}
			field.WriteRune(ch)
			continue
		}

		switch ch {
		case '"':
			inQuotes = true
		case delim:
			flushField()
		case '\n':
			flushRow()
		case '\r':
			flushRow()
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
		default:
			field.WriteRune(ch)
		}
	}

	// Flush whatever is pending at end of input. This covers both the
	// final record without a trailing newline and a trailing unterminated
	// quoted field.
	if field.Len() > 0 || len(fields) > 0 {
		flushRow()
	}

	return rows
}

// =============================================================================
// MATRIX PASSTHROUGH
// =============================================================================

// CleanMatrix applies the parser's output contract to an already-decoded
// cell matrix (e.g. a workbook sheet): rows pass through in order with
// blank rows dropped. No delimiter handling is involved.
func CleanMatrix(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// DELIMITER SETTINGS
// =============================================================================

// DelimiterRune maps a configured delimiter string to its rune form,
// handling the spellings configuration files use for common delimiters.
func DelimiterRune(s string) rune {
	switch s {
	case "\\t", "tab", "TAB":
		return '\t'
	case "|", "pipe", "PIPE":
		return '|'
	case ";", "semicolon":
		return ';'
	default:
		if len(s) > 0 {
			return rune(s[0])
		}
		return ','
	}
}
