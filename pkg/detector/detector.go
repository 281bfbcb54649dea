// Package detector derives cheap enrichment signals from extracted document
// text: the dominant language plus academic indicators (DOI, arXiv IDs,
// LaTeX and citation markers). The signals are additive metadata for the
// batch summary and run ledger; they never influence outline inference.
package detector

import (
	"regexp"
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/layout"
	"github.com/dtnitsch/pdf-outline-parser/pkg/noise"
)

// EnrichedMetadata contains detection results for one document.
type EnrichedMetadata struct {
	// Language is the detected dominant language name ("English",
	// "German", ...) or "unknown" when detection is inconclusive.
	Language           string
	LanguageConfidence float64

	// Academic signals
	HasDOI        bool
	DOIPattern    string
	HasArXiv      bool
	ArXivID       string
	HasLaTeX      bool
	HasCitations  bool
	HasReferences bool
	HasAbstract   bool
	AcademicScore float64 // 0-10 academic confidence
}

var (
	// DOI pattern: 10.xxxx/...
	doiPattern = regexp.MustCompile(`10\.\d{4,}/[^\s]+`)

	arxivPattern = regexp.MustCompile(`arXiv:(\d{4}\.\d{4,5})`)
)

// candidateLanguages bounds the lingua model load to the languages the
// corpus realistically contains.
var candidateLanguages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Chinese,
	lingua.Japanese,
}

// Detector analyzes extracted documents. It is safe for concurrent use and
// should be created once per process: the language models are expensive to
// load.
type Detector struct {
	languages lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		languages: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidateLanguages...).
			Build(),
	}
}

// Analyze scans the document's retained text for language and academic
// signals. Lines the noise filter would drop (page furniture, symbol soup,
// footer links) are excluded so they cannot sway detection.
func (d *Detector) Analyze(doc *models.Document) *EnrichedMetadata {
	em := &EnrichedMetadata{Language: "unknown"}
	if doc == nil || len(doc.Lines) == 0 {
		return em
	}

	retained := noise.Filter(doc, layout.BodyFontSize(doc.Lines))
	if len(retained) == 0 {
		return em
	}

	var b strings.Builder
	for _, line := range retained {
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	content := b.String()

	if lang, ok := d.languages.DetectLanguageOf(content); ok {
		em.Language = lang.String()
		em.LanguageConfidence = d.languages.ComputeLanguageConfidence(content, lang)
	}

	em.detectAcademicSignals(content)
	return em
}

// detectAcademicSignals scans content for academic indicators.
func (em *EnrichedMetadata) detectAcademicSignals(content string) {
	lowerContent := strings.ToLower(content)

	if match := doiPattern.FindString(content); match != "" {
		em.HasDOI = true
		em.DOIPattern = match
	}

	if matches := arxivPattern.FindStringSubmatch(content); len(matches) > 1 {
		em.HasArXiv = true
		em.ArXivID = matches[1]
	}

	latexMarkers := []string{"\\begin{", "\\end{", "\\cite{", "\\ref{", "\\label{"}
	for _, marker := range latexMarkers {
		if strings.Contains(content, marker) {
			em.HasLaTeX = true
			break
		}
	}

	citationMarkers := []string{"et al.", "et al ", "[1]", "[2]", "(1)", "(2)"}
	citationCount := 0
	for _, marker := range citationMarkers {
		if strings.Contains(lowerContent, marker) {
			citationCount++
		}
	}
	em.HasCitations = citationCount >= 2

	if strings.Contains(lowerContent, "references") || strings.Contains(lowerContent, "bibliography") {
		em.HasReferences = true
	}
	if strings.Contains(lowerContent, "abstract") {
		em.HasAbstract = true
	}

	score := 0.0
	if em.HasDOI {
		score += 3.0
	}
	if em.HasArXiv {
		score += 3.0
	}
	if em.HasLaTeX {
		score += 1.5
	}
	if em.HasCitations {
		score += 1.0
	}
	if em.HasReferences {
		score += 1.0
	}
	if em.HasAbstract {
		score += 0.5
	}
	em.AcademicScore = score
}

// IsAcademic reports whether the signals point at a scholarly document.
func (em *EnrichedMetadata) IsAcademic() bool {
	return em.AcademicScore >= 3.0
}
