package noise

import (
	"strings"
	"unicode"

	"github.com/bytedance/sonic"

	"github.com/dtnitsch/pdf-outline-parser/models"
)

// dockerInvocation is a known shell line from embedded usage examples that
// survives extraction as ordinary text.
const dockerInvocation = "docker run --rm -v $(pwd)/input:/app/input -v $(pwd)/output:/app/output --network none"

// Filter drops page furniture and low-information lines. bodySize is the
// pre-filter body font size; doc provides per-page dimensions for the
// margin-band checks.
func Filter(doc *models.Document, bodySize float64) []models.TextLine {
	var kept []models.TextLine
	for _, line := range doc.Lines {
		page := doc.Page(line.Page)
		if IsNoise(line, page.Width, page.Height, bodySize) {
			continue
		}
		if IsCodeOrJSONExample(line.Text) {
			continue
		}
		if IsCaption(line.Text, line.FontSize, bodySize) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// IsNoise reports whether a single line is page furniture or too
// low-information to carry structure.
func IsNoise(line models.TextLine, pageWidth, pageHeight, bodySize float64) bool {
	text := strings.TrimSpace(line.Text)

	// Page numbers hugging the top or bottom margin band.
	if (PageNumber.MatchString(text) || PageLabel.MatchString(text)) &&
		line.FontSize < bodySize*1.2 &&
		(line.Y0 < pageHeight*0.08 || line.Y0 > pageHeight*0.92) {
		return true
	}

	// Short all-caps runs in the outer margins: running headers/footers.
	if len(strings.Fields(text)) <= 5 && isUpper(text) && len(text) > 2 &&
		(line.Y0 < pageHeight*0.05 || line.Y0 > pageHeight*0.95) {
		return true
	}

	// Fragments too short or entirely non-alphanumeric.
	if len(text) <= 3 || symbolsOnly.MatchString(text) {
		return true
	}

	// Symbol soup: decorative rules, equation debris.
	if len(text) > 5 && alnumRatio(text) < 0.3 {
		return true
	}

	// URLs and file paths at body scale are citations or footer links.
	if URLOrPath.MatchString(text) && line.FontSize < bodySize*1.2 {
		return true
	}

	// Too small to be meaningful body or heading text.
	if line.FontSize < bodySize*0.7 {
		return true
	}

	return false
}

// IsCaption reports whether the line is a figure/table caption at or below
// caption scale. Large caption-patterned lines are kept: some documents set
// section headings as "Table of Contents" style lines.
func IsCaption(text string, fontSize, bodySize float64) bool {
	if !Caption.MatchString(text) {
		return false
	}
	return fontSize <= bodySize*1.2
}

// IsCodeOrJSONExample reports whether a line is verbatim example material:
// a known shell invocation, a code-fence or command opener, or a complete
// JSON value.
func IsCodeOrJSONExample(text string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if strings.Contains(text, dockerInvocation) {
		return true
	}
	if strings.HasPrefix(lower, "```") ||
		strings.HasPrefix(lower, "docker build") ||
		strings.HasPrefix(lower, "cmd [") {
		return true
	}

	return looksLikeJSONValue(trimmed)
}

// looksLikeJSONValue runs a cheap syntactic pre-check (balanced outer
// delimiters, a key separator, a quote) before attempting a strict parse.
// A parse failure is a negative classification, not an error.
func looksLikeJSONValue(text string) bool {
	bracketed := (strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}")) ||
		(strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"))
	if !bracketed {
		return false
	}
	if !strings.Contains(text, ":") || !strings.Contains(text, `"`) {
		return false
	}

	var value any
	return sonic.UnmarshalString(text, &value) == nil
}

// alnumRatio returns the fraction of alphanumeric runes in the text.
func alnumRatio(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	alnum := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	return float64(alnum) / float64(len(runes))
}

// isUpper reports whether the text contains at least one cased rune and no
// lowercase runes, mirroring the upper-case test used for running headers.
func isUpper(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func normalizeUpper(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}
