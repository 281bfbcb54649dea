package outline

import "errors"

var (
	// ErrEmptyDocument means the document has no pages at all.
	ErrEmptyDocument = errors.New("document has no pages or is unreadable")

	// ErrNoExtractableText means pages exist but produced no text lines.
	ErrNoExtractableText = errors.New("no text found in document")

	// ErrNoStructuralContent means every extracted line was removed by the
	// noise filter, leaving nothing to analyze.
	ErrNoStructuralContent = errors.New("no meaningful text found to create an outline")
)
