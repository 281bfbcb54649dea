package detector

import (
	"testing"

	"github.com/dtnitsch/pdf-outline-parser/models"
)

func docFromText(texts ...string) *models.Document {
	doc := &models.Document{Pages: []models.PageInfo{{Width: 612, Height: 792}}}
	for i, text := range texts {
		doc.Lines = append(doc.Lines, models.TextLine{
			Text:     text,
			FontSize: 10,
			Y0:       float64(100 + 14*i),
		})
	}
	return doc
}

func TestDetectAcademicSignals(t *testing.T) {
	em := &EnrichedMetadata{}
	em.detectAcademicSignals(`Abstract
This work builds on Smith et al. [1] and Jones et al. [2].
arXiv:2103.14030
DOI: 10.1234/example.5678
References`)

	if !em.HasDOI || em.DOIPattern != "10.1234/example.5678" {
		t.Errorf("DOI detection failed: %+v", em)
	}
	if !em.HasArXiv || em.ArXivID != "2103.14030" {
		t.Errorf("arXiv detection failed: %+v", em)
	}
	if !em.HasCitations {
		t.Error("citation markers not detected")
	}
	if !em.HasReferences || !em.HasAbstract {
		t.Errorf("section markers not detected: %+v", em)
	}
	if !em.IsAcademic() {
		t.Errorf("academic score = %v, want >= 3", em.AcademicScore)
	}
}

func TestDetectAcademicSignalsPlainReport(t *testing.T) {
	em := &EnrichedMetadata{}
	em.detectAcademicSignals(`Quarterly progress summary.
Revenue grew across all segments.
Outlook for next quarter remains positive.`)

	if em.HasDOI || em.HasArXiv || em.HasLaTeX {
		t.Errorf("false academic signals: %+v", em)
	}
	if em.IsAcademic() {
		t.Errorf("plain report scored academic: %v", em.AcademicScore)
	}
}

func TestAnalyzeDetectsLanguage(t *testing.T) {
	d := New()

	doc := docFromText(
		"The quick brown fox jumps over the lazy dog.",
		"This sentence exists purely to give the detector enough English text.",
		"Language identification needs a reasonable amount of input to be reliable.",
	)

	em := d.Analyze(doc)
	if em.Language != "English" {
		t.Errorf("language = %q, want English", em.Language)
	}
	if em.LanguageConfidence <= 0 {
		t.Errorf("language confidence = %v, want > 0", em.LanguageConfidence)
	}
}

func TestAnalyzeIgnoresFilteredLines(t *testing.T) {
	d := New()

	doc := docFromText(
		"The quick brown fox jumps over the lazy dog.",
		"This sentence exists purely to give the detector enough English text.",
		"Language identification needs a reasonable amount of input to be reliable.",
	)
	// A sub-body-size footer line; the noise filter drops it, so its DOI
	// must not register as an academic signal.
	doc.Lines = append(doc.Lines, models.TextLine{
		Text:     "doi 10.9999/footer.note",
		FontSize: 4,
		Y0:       780,
	})

	em := d.Analyze(doc)
	if em.HasDOI {
		t.Errorf("DOI from a filtered footer line registered: %+v", em)
	}
	if em.Language != "English" {
		t.Errorf("language = %q, want English from the retained prose", em.Language)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	d := New()

	em := d.Analyze(&models.Document{})
	if em.Language != "unknown" {
		t.Errorf("language = %q, want unknown for empty document", em.Language)
	}
	if em.AcademicScore != 0 {
		t.Errorf("academic score = %v, want 0", em.AcademicScore)
	}
}
