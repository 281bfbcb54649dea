// Package outline infers a document outline (title plus H1-H3 headings)
// from extracted text lines using font statistics, column geometry, and
// numbering conventions. It has no knowledge of the extraction backend.
package outline

import (
	"fmt"
	"log/slog"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/layout"
	"github.com/dtnitsch/pdf-outline-parser/pkg/noise"
)

// Extract runs the full inference pipeline over an extracted document. It
// never returns an error: any failure collapses to the single-entry error
// outline so one bad document cannot abort a batch.
func Extract(doc *models.Document) models.DocumentOutline {
	result, err := extract(doc)
	if err != nil {
		slog.Error("outline extraction failed", "error", err)
		return models.NewErrorOutline(fmt.Sprintf("Failed to process: %v", err))
	}
	return result
}

func extract(doc *models.Document) (models.DocumentOutline, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return models.DocumentOutline{}, ErrEmptyDocument
	}
	if len(doc.Lines) == 0 {
		return models.DocumentOutline{}, ErrNoExtractableText
	}

	// Body size for noise decisions is computed over the raw population.
	// The statistics below recompute it over the filtered population; the
	// two can diverge on noise-heavy documents and that asymmetry is part
	// of the observed behavior.
	preFilterBody := layout.BodyFontSize(doc.Lines)

	filtered := noise.Filter(doc, preFilterBody)
	if len(filtered) == 0 {
		return models.DocumentOutline{}, ErrNoStructuralContent
	}

	firstPage := doc.Pages[0]
	stats := layout.Analyze(filtered, firstPage.Width)

	slog.Info("document statistics",
		"h1_threshold", stats.H1Threshold,
		"h2_threshold", stats.H2Threshold,
		"h3_threshold", stats.H3Threshold,
		"body_font_size", stats.BodyFontSize,
		"column_x0s", stats.ColumnX0s,
		"avg_line_spacing", stats.AverageLineSpacing,
	)

	title := DetectTitle(doc.FirstPageLines(), filtered, stats.BodyFontSize, firstPage.Height)
	slog.Info("detected title", "title", title)

	entries := Classify(filtered, title, stats)

	return models.DocumentOutline{Title: title, Outline: entries}, nil
}
