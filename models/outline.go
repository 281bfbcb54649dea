package models

// Heading levels emitted in the outline. LevelError marks the single entry
// of an error outline.
const (
	LevelH1    = "H1"
	LevelH2    = "H2"
	LevelH3    = "H3"
	LevelError = "Error"
)

// ErrorTitle is the document title used whenever processing fails.
const ErrorTitle = "Error Processing Document"

// UntitledDocument is the title used when no plausible title is found.
const UntitledDocument = "Untitled Document"

// OutlineEntry is one heading in a document outline.
type OutlineEntry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// DocumentOutline is the persisted result for one document: the detected
// title plus the headings in reading order.
type DocumentOutline struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// NewErrorOutline creates the whole-document failure result: a fixed title
// and exactly one Error-level entry carrying the failure description.
func NewErrorOutline(message string) DocumentOutline {
	return DocumentOutline{
		Title: ErrorTitle,
		Outline: []OutlineEntry{
			{Level: LevelError, Text: message, Page: 0},
		},
	}
}

// HeadingCount returns the number of real (non-error) outline entries.
func (o DocumentOutline) HeadingCount() int {
	n := 0
	for _, entry := range o.Outline {
		if entry.Level != LevelError {
			n++
		}
	}
	return n
}

// IsError reports whether this outline is a failure result.
func (o DocumentOutline) IsError() bool {
	return len(o.Outline) == 1 && o.Outline[0].Level == LevelError
}
