package noise

import (
	"testing"

	"github.com/dtnitsch/pdf-outline-parser/models"
)

func testLine(text string, size, y0 float64) models.TextLine {
	return models.TextLine{
		Text:     text,
		FontSize: size,
		X0:       72,
		Y0:       y0,
		X1:       400,
		Y1:       y0 + size,
		Page:     1,
	}
}

func TestIsNoise(t *testing.T) {
	const (
		pageWidth  = 612.0
		pageHeight = 792.0
		bodySize   = 10.0
	)

	tests := []struct {
		name string
		line models.TextLine
		want bool
	}{
		{
			name: "bare page number in footer",
			line: testLine("42", 9, 760),
			want: true,
		},
		{
			name: "page label in header",
			line: testLine("Page 7", 9, 20),
			want: true,
		},
		{
			name: "page number mid-page is kept",
			line: testLine("4270", 9, 400),
			want: false,
		},
		{
			name: "large page-number-like heading is kept",
			line: testLine("2026", 18, 30),
			want: false,
		},
		{
			name: "running header all caps in margin",
			line: testLine("SUBMITTED MANUSCRIPT", 8, 15),
			want: true,
		},
		{
			name: "all caps mid-page is kept",
			line: testLine("RESULTS AND DISCUSSION", 12, 300),
			want: false,
		},
		{
			name: "very short fragment",
			line: testLine("ab", 10, 300),
			want: true,
		},
		{
			name: "symbols only",
			line: testLine("* * * * *", 10, 300),
			want: true,
		},
		{
			name: "symbol soup with low alnum ratio",
			line: testLine("--- | --- | ---", 10, 300),
			want: true,
		},
		{
			name: "url at body scale",
			line: testLine("https://example.org/data", 10, 300),
			want: true,
		},
		{
			name: "url-like text at heading scale is kept",
			line: testLine("Resources at www.example.org", 16, 300),
			want: false,
		},
		{
			name: "tiny footnote text",
			line: testLine("See appendix for details", 6, 500),
			want: true,
		},
		{
			name: "ordinary body line",
			line: testLine("The instrument collected data over three orbits.", 10, 300),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNoise(tt.line, pageWidth, pageHeight, bodySize)
			if got != tt.want {
				t.Errorf("IsNoise(%q) = %v, want %v", tt.line.Text, got, tt.want)
			}
		})
	}
}

func TestIsCaption(t *testing.T) {
	const bodySize = 10.0

	tests := []struct {
		name     string
		text     string
		fontSize float64
		want     bool
	}{
		{"figure caption at body scale", "Figure 3: Orbit geometry", 10, true},
		{"abbreviated figure caption", "Fig. 2.1. Sensor layout", 9, true},
		{"table caption", "Table 1: Summary statistics", 10, true},
		{"abbreviated table caption", "Tab. 4. Results", 10, true},
		{"caption-patterned heading at large size", "Figure 1: Key Findings", 16, false},
		{"plain sentence mentioning a figure", "As shown in Figure 3, the trend holds.", 10, false},
		{"no trailing separator", "Figure 3", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsCaption(tt.text, tt.fontSize, bodySize)
			if got != tt.want {
				t.Errorf("IsCaption(%q, %v) = %v, want %v", tt.text, tt.fontSize, got, tt.want)
			}
		})
	}
}

func TestIsCodeOrJSONExample(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "known docker invocation",
			text: "docker run --rm -v $(pwd)/input:/app/input -v $(pwd)/output:/app/output --network none",
			want: true,
		},
		{"code fence", "```python", true},
		{"docker build command", "docker build -t extractor .", true},
		{"dockerfile cmd", `CMD ["python", "main.py"]`, true},
		{"complete json object", `{"title": "Sample", "page": 3}`, true},
		{"complete json array", `[{"level": "H1", "text": "Intro"}]`, true},
		{"braces but not json", `{this: is not "valid json}`, false},
		{"set notation", "{1, 2, 3}", false},
		{"ordinary prose", "The build process runs inside a container.", false},
		{"prose mentioning docker", "We deploy with docker in production.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsCodeOrJSONExample(tt.text)
			if got != tt.want {
				t.Errorf("IsCodeOrJSONExample(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsSpecialSection(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Abstract", true},
		{"  REFERENCES  ", true},
		{"Acknowledgments", true},
		{"Appendix", true},
		{"Appendix A", false},
		{"Introduction", false},
	}

	for _, tt := range tests {
		if got := IsSpecialSection(tt.text); got != tt.want {
			t.Errorf("IsSpecialSection(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFilterDropsAllNoiseKinds(t *testing.T) {
	doc := &models.Document{
		Pages: []models.PageInfo{{Width: 612, Height: 792}},
		Lines: []models.TextLine{
			testLine("1. Introduction", 14, 120),
			testLine("3", 9, 770),
			testLine("Figure 1: Overview", 10, 400),
			testLine(`{"key": "value"}`, 10, 420),
			testLine("Body text continues across the column here.", 10, 440),
		},
	}

	kept := Filter(doc, 10.0)
	if len(kept) != 2 {
		t.Fatalf("Filter() kept %d lines, want 2", len(kept))
	}
	if kept[0].Text != "1. Introduction" {
		t.Errorf("first kept line = %q, want heading", kept[0].Text)
	}
	if kept[1].Text != "Body text continues across the column here." {
		t.Errorf("second kept line = %q, want body text", kept[1].Text)
	}
}
