// =============================================================================
// CMMC Assessment Importer - Control Catalog
// =============================================================================
//
// This module owns the canonical numbering scheme for assessment objectives.
// A catalog is the set of controls and objectives the importer matches rows
// against, rendered under the active catalog revision:
//
//   rev2 : NIST SP 800-171 rev 2 numbering, plain integers ("3.1.1[a]")
//   rev3 : NIST SP 800-171 rev 3 numbering, zero-padded  ("03.01.01[a]")
//
// Exactly one revision is active at a time; all normalization targets it.
// Catalogs are normally loaded from a YAML file, with a built-in subset of
// the Access Control family available as a fallback so the tool works
// without any setup.
//
// =============================================================================

package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// REVISIONS
// =============================================================================

// Revision selects the canonical rendering of objective identifiers.
type Revision string

const (
	// Rev2 renders the three numeric parts as plain integers: "3.1.1".
	Rev2 Revision = "rev2"

	// Rev3 renders each part zero-padded to two digits: "03.01.01".
	Rev3 Revision = "rev3"
)

// ParseRevision maps a configuration string to a Revision.
// Unrecognized values fall back to Rev2, the scheme most assessment
// spreadsheets in circulation still use.
func ParseRevision(s string) Revision {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rev3", "r3", "3":
		return Rev3
	default:
		return Rev2
	}
}

// =============================================================================
// IDENTIFIER NORMALIZATION
// =============================================================================

// Pre-compiled patterns for identifier normalization.
var (
	// A two-letter family code prefix, e.g. "AC-" in "AC-3.1.1[a]".
	familyPrefixRe = regexp.MustCompile(`(?i)^[a-z]{2}-`)

	// Three dotted numeric parts with optional leading zeros and an
	// optional trailing suffix (letters, brackets, parens, dots).
	dottedIDRe = regexp.MustCompile(`^0*([0-9]+)\.0*([0-9]+)\.0*([0-9]+)(.*)$`)

	// Suffix spellings that are equivalent to the bracketed form.
	parenSuffixRe = regexp.MustCompile(`\(([a-z]+)\)$`)
	dotSuffixRe   = regexp.MustCompile(`\.([a-z]+)$`)
)

// NormalizeID converts a raw objective identifier into the canonical form
// for the given revision.
//
// NORMALIZATION STEPS:
//  1. Strip a leading family-code prefix ("AC-", case-insensitive).
//  2. If the remainder is a three-part dotted numeric identifier, re-render
//     the numeric parts for the active revision. The trailing suffix is
//     carried through verbatim.
//  3. Normalize the suffix: "(a)" and a trailing ".a" both become "[a]".
//
// Malformed input is never an error: strings that do not match the dotted
// numeric pattern pass through steps 1 and 3 only.
func NormalizeID(raw string, rev Revision) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// Step 1: family prefix.
	s = familyPrefixRe.ReplaceAllString(s, "")

	// Step 2: numeric parts.
	if m := dottedIDRe.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		c, _ := strconv.Atoi(m[3])

		if rev == Rev3 {
			s = fmt.Sprintf("%02d.%02d.%02d%s", a, b, c, m[4])
		} else {
			s = fmt.Sprintf("%d.%d.%d%s", a, b, c, m[4])
		}
	}

	// Step 3: suffix spelling.
	s = parenSuffixRe.ReplaceAllString(s, "[$1]")
	s = dotSuffixRe.ReplaceAllString(s, "[$1]")

	return s
}

// =============================================================================
// CATALOG STRUCTURE
// =============================================================================

// Objective is one assessment objective, keyed by its canonical identifier.
type Objective struct {
	// ID is the canonical objective identifier under the active revision,
	// e.g. "3.1.1[a]".
	ID string

	// ControlID is the canonical identifier of the parent control.
	ControlID string

	// ControlName is the short name of the parent control, used by the
	// template export for the control-name column.
	ControlName string
}

// Control is one control as declared in the catalog file.
type Control struct {
	// ID is the control identifier in its base (rev 2) spelling, e.g. "3.1.1".
	ID string `yaml:"id"`

	// Family is the two-letter family code, e.g. "AC".
	Family string `yaml:"family"`

	// Name is the short human-readable control name.
	Name string `yaml:"name"`

	// Objectives lists the objective suffix letters, e.g. [a, b, c].
	// A control with no listed objectives contributes a single objective
	// whose identifier is the control identifier itself.
	Objectives []string `yaml:"objectives"`
}

// catalogFile is the on-disk YAML shape.
type catalogFile struct {
	Controls []Control `yaml:"controls"`
}

// Catalog holds the valid-identifier set the matcher classifies rows
// against, plus the ordered objective list used by the template export.
type Catalog struct {
	// Revision is the active canonical revision.
	Revision Revision

	// Controls in declaration order.
	Controls []Control

	objectives []Objective
	idSet      map[string]struct{}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads a catalog YAML file and renders it under the given revision.
func Load(path string, rev Revision) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if len(file.Controls) == 0 {
		return nil, fmt.Errorf("catalog file %s declares no controls", path)
	}

	return build(file.Controls, rev), nil
}

// Builtin returns the built-in catalog subset (800-171 Access Control
// family) rendered under the given revision.
func Builtin(rev Revision) *Catalog {
	return build(builtinControls, rev)
}

// build renders controls into a catalog for one revision.
func build(controls []Control, rev Revision) *Catalog {
	c := &Catalog{
		Revision: rev,
		Controls: controls,
		idSet:    make(map[string]struct{}),
	}

	for _, ctrl := range controls {
		controlID := NormalizeID(ctrl.ID, rev)

		if len(ctrl.Objectives) == 0 {
			c.add(Objective{ID: controlID, ControlID: controlID, ControlName: ctrl.Name})
			continue
		}

		for _, letter := range ctrl.Objectives {
			id := NormalizeID(ctrl.ID+"["+strings.TrimSpace(letter)+"]", rev)
			c.add(Objective{ID: id, ControlID: controlID, ControlName: ctrl.Name})
		}
	}

	return c
}

func (c *Catalog) add(o Objective) {
	if _, exists := c.idSet[o.ID]; exists {
		return
	}
	c.objectives = append(c.objectives, o)
	c.idSet[o.ID] = struct{}{}
}

// =============================================================================
// LOOKUP
// =============================================================================

// Has reports whether id is a canonical objective identifier in this catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.idSet[id]
	return ok
}

// Objectives returns all objectives in catalog order.
func (c *Catalog) Objectives() []Objective {
	return c.objectives
}

// Len returns the number of objectives in the catalog.
func (c *Catalog) Len() int {
	return len(c.objectives)
}
