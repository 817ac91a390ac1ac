// =============================================================================
// CMMC Assessment Importer - Status Normalization
// =============================================================================
//
// Free-text status values from assessment spreadsheets are folded into the
// fixed status vocabulary used everywhere else in the tool. Matching is
// case-insensitive substring matching against keyword lists, except for the
// "not applicable" spellings, which must match exactly so that ordinary
// words containing "na" do not read as not-assessed.
//
// =============================================================================

package importer

import "strings"

// Status is the normalized assessment status vocabulary.
type Status string

const (
	StatusMet         Status = "met"
	StatusPartial     Status = "partial"
	StatusNotMet      Status = "not-met"
	StatusNotAssessed Status = "not-assessed"

	// StatusUnknown is the terminal state for text that matches no keyword
	// group. It is distinct from not-assessed and is surfaced to the user
	// rather than silently coerced.
	StatusUnknown Status = ""
)

// Keyword groups for status normalization. The not-met group is tested
// before the met group: "not met", "non-compliant", and "not implemented"
// all contain a met keyword as a substring and must not be shadowed by it.
var (
	notAssessedExact = []string{"n/a", "not applicable", "na"}
	notMetKeywords   = []string{"not met", "not-met", "no", "failed", "non-compliant", "not implemented", "deficient"}
	partialKeywords  = []string{"partial", "in progress", "in-progress", "partially"}
	metKeywords      = []string{"met", "satisfied", "yes", "implemented", "compliant", "pass", "complete"}
)

// NormalizeStatus folds a raw status cell into the status vocabulary.
// Unrecognized text maps to StatusUnknown.
func NormalizeStatus(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return StatusUnknown
	}

	for _, exact := range notAssessedExact {
		if s == exact {
			return StatusNotAssessed
		}
	}
	if containsAny(s, notMetKeywords) {
		return StatusNotMet
	}
	if containsAny(s, partialKeywords) {
		return StatusPartial
	}
	if containsAny(s, metKeywords) {
		return StatusMet
	}

	return StatusUnknown
}

// Remediation (POA&M) status vocabulary.
const (
	RemediationOpen       = "open"
	RemediationInProgress = "in-progress"
	RemediationCompleted  = "completed"
)

// NormalizeRemediationStatus folds raw POA&M status text into the
// remediation vocabulary. Text matching no more specific pattern is "open".
func NormalizeRemediationStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "progress"):
		return RemediationInProgress
	case strings.Contains(s, "close"), strings.Contains(s, "complete"):
		return RemediationCompleted
	default:
		return RemediationOpen
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
