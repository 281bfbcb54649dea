// Package noise removes page furniture and low-information lines before
// structural analysis: page numbers, running headers and footers, captions,
// embedded code or JSON examples, and decorative fragments. Filtering is
// purely per-line and order-independent.
package noise

import "regexp"

// The structural pattern table. Every pattern used by the filter and the
// downstream classifier is compiled once here, keyed by purpose, so new
// document conventions can be added without touching control flow.
var (
	// Caption matches figure/table captions ("Figure 3:", "Tab. 2.1.").
	Caption = regexp.MustCompile(`(?i)^(figure|fig\.|table|tab\.)\s+\d+(\.\d+)*\s*[:.]`)

	// PageNumber matches a bare page number line.
	PageNumber = regexp.MustCompile(`^\s*\d+\s*$`)

	// PageLabel matches "Page N" footer lines.
	PageLabel = regexp.MustCompile(`(?i)^page\s+\d+$`)

	// URLOrPath matches URL-like or filesystem-path-like content.
	URLOrPath = regexp.MustCompile(`https?://|www\.|[a-zA-Z]:\\|/[a-zA-Z0-9_.-]+/[a-zA-Z0-9_.-]+`)

	// NumberedH1/H2/H3 match numeric heading prefixes of increasing depth
	// ("1. Intro", "2.3. Methods", "2.3.1. Setup"). Checked most-specific
	// first by the classifier.
	NumberedH1 = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
	NumberedH2 = regexp.MustCompile(`^(\d+\.\d+)\.\s+(.*)`)
	NumberedH3 = regexp.MustCompile(`^(\d+\.\d+\.\d+)\.\s+(.*)`)

	// MetadataHeader matches front-matter lines (preprint markers,
	// affiliations, keyword lists) that are neither titles nor headings.
	MetadataHeader = regexp.MustCompile(`(?i)^(arXiv|DRAFT VERSION|Typeset using|Keywords:|Corresponding author|Jet Propulsion Laboratory|Division of Geological and Planetary Sciences|Department of Physics|Institute of Astronomy|Department of Earth, Planetary, and Space Sciences)`)

	// NumericPrefix matches any leading section-number run. Used to tell
	// unnumbered heading candidates from already-numbered lines.
	NumericPrefix = regexp.MustCompile(`^\d+(\.\d+)*\s*`)

	// symbolsOnly matches lines with no alphanumeric content at all.
	symbolsOnly = regexp.MustCompile(`^[\W_]+$`)
)

// specialSections are section names handled by numbering-free conventions
// (they are skipped by the classifier unless written as numbered headings).
var specialSections = map[string]struct{}{
	"ABSTRACT":        {},
	"ACKNOWLEDGMENTS": {},
	"REFERENCES":      {},
	"APPENDIX":        {},
}

// IsSpecialSection reports whether the text is one of the conventional
// unnumbered section names.
func IsSpecialSection(text string) bool {
	_, ok := specialSections[normalizeUpper(text)]
	return ok
}
