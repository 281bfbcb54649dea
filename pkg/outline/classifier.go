package outline

import (
	"math"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/layout"
	"github.com/dtnitsch/pdf-outline-parser/pkg/noise"
)

// x0ToleranceLoose is the horizontal slack when matching a line against a
// detected column origin.
const x0ToleranceLoose = 10.0

// Classify walks the noise-filtered lines in document order and assigns
// heading levels. Numbered prefixes win outright; unnumbered candidates are
// judged by font size against the thresholds or by an unusually large
// vertical gap at body scale. Entries are appended in reading order with no
// deduplication or nesting validation.
func Classify(filtered []models.TextLine, title string, stats layout.Statistics) []models.OutlineEntry {
	var entries []models.OutlineEntry

	leftColumn := 0.0
	rightColumn := 0.0
	if len(stats.ColumnX0s) > 0 {
		leftColumn = stats.ColumnX0s[0]
	}
	if len(stats.ColumnX0s) > 1 {
		rightColumn = stats.ColumnX0s[1]
	}

	lastY0 := -1.0

	for _, line := range filtered {
		text := line.Text

		// The title is not a heading. It also does not count as a
		// previous line for gap purposes.
		if title != "" && text == title {
			continue
		}
		if noise.MetadataHeader.MatchString(text) {
			lastY0 = line.Y0
			continue
		}
		if noise.IsSpecialSection(text) && !noise.NumericPrefix.MatchString(text) {
			lastY0 = line.Y0
			continue
		}

		verticalGap := 0.0
		if lastY0 != -1 {
			verticalGap = line.Y0 - lastY0
		}
		lastY0 = line.Y0

		aligned := 0.0
		found := false
		if math.Abs(line.X0-leftColumn) < x0ToleranceLoose {
			aligned = leftColumn
			found = true
		} else if rightColumn > 0 && math.Abs(line.X0-rightColumn) < x0ToleranceLoose {
			aligned = rightColumn
			found = true
		}
		if !found {
			// Footnote, margin note, or other non-structural aside.
			continue
		}

		// Numeric prefixes encode the level directly.
		if noise.NumberedH1.MatchString(text) {
			entries = append(entries, models.OutlineEntry{Level: models.LevelH1, Text: text, Page: line.Page})
			continue
		}
		if noise.NumberedH2.MatchString(text) {
			entries = append(entries, models.OutlineEntry{Level: models.LevelH2, Text: text, Page: line.Page})
			continue
		}
		if noise.NumberedH3.MatchString(text) {
			entries = append(entries, models.OutlineEntry{Level: models.LevelH3, Text: text, Page: line.Page})
			continue
		}

		words := line.WordCount()
		candidate := line.IsBold &&
			!noise.NumericPrefix.MatchString(text) &&
			words > 2 && words < 20 &&
			math.Abs(line.X0-aligned) < x0ToleranceLoose

		if !candidate {
			continue
		}

		bigGap := func(multiplier float64) bool {
			return line.FontSize >= stats.BodyFontSize*0.95 &&
				verticalGap > stats.AverageLineSpacing*multiplier
		}

		switch {
		case line.FontSize >= stats.H1Threshold*0.95 || bigGap(2.5):
			entries = append(entries, models.OutlineEntry{Level: models.LevelH1, Text: text, Page: line.Page})
		case line.FontSize >= stats.H2Threshold*0.95 || bigGap(2.0):
			entries = append(entries, models.OutlineEntry{Level: models.LevelH2, Text: text, Page: line.Page})
		case line.FontSize >= stats.H3Threshold*0.95 || bigGap(1.5):
			entries = append(entries, models.OutlineEntry{Level: models.LevelH3, Text: text, Page: line.Page})
		}
	}

	return entries
}
