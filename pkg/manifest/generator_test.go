package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
	"github.com/dtnitsch/pdf-outline-parser/pkg/storage"
)

func TestGenerateSummaryMixedResults(t *testing.T) {
	dir := t.TempDir()

	results := []DocumentResult{
		{
			Input:      "papers/alpha.pdf",
			OutputPath: filepath.Join(dir, "alpha.json"),
			Outline: models.DocumentOutline{
				Title: "Atmospheric Circulation of Hot Jupiters",
				Outline: []models.OutlineEntry{
					{Level: models.LevelH1, Text: "1. Introduction", Page: 0},
					{Level: models.LevelH2, Text: "1.1. Background", Page: 1},
				},
			},
			PageCount:  12,
			SizeBytes:  2048,
			Metadata:   &detector.EnrichedMetadata{Language: "English", AcademicScore: 4.5},
			WordCounts: map[string]int{"circulation": 2, "atmospheric": 1},
		},
		{
			Input: "papers/beta.pdf",
			Err:   errors.New("failed to open PDF papers/beta.pdf: bad header"),
		},
		{
			Input:   "papers/gamma.pdf",
			Outline: models.NewErrorOutline("Failed to process: no text found in document"),
		},
	}

	path, err := GenerateSummary(results, map[string]int{"circulation": 2, "atmospheric": 1}, &storage.Storage{}, dir)
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if path != filepath.Join(dir, "summary.json") {
		t.Errorf("manifest path = %q, want summary.json in the output dir", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}

	var summary SummaryManifest
	if err := sonic.Unmarshal(data, &summary); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}

	if summary.TotalDocuments != 3 {
		t.Errorf("total documents = %d, want 3", summary.TotalDocuments)
	}
	if summary.Successful != 1 || summary.Failed != 2 {
		t.Errorf("successful/failed = %d/%d, want 1/2", summary.Successful, summary.Failed)
	}
	if len(summary.AggregateKeywords) == 0 || summary.AggregateKeywords[0] != "circulation:2" {
		t.Errorf("aggregate keywords = %v, want circulation:2 first", summary.AggregateKeywords)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("result rows = %d, want 3", len(summary.Results))
	}

	alpha := summary.Results[0]
	if alpha.Status != "success" {
		t.Errorf("alpha status = %q, want success", alpha.Status)
	}
	if alpha.Title != "Atmospheric Circulation of Hot Jupiters" || alpha.HeadingCount != 2 {
		t.Errorf("alpha row = %+v, want the outline title and 2 headings", alpha)
	}
	if alpha.PageCount != 12 || alpha.SizeBytes != 2048 {
		t.Errorf("alpha size fields = %d pages / %d bytes", alpha.PageCount, alpha.SizeBytes)
	}
	if alpha.Language != "English" || !alpha.IsAcademic {
		t.Errorf("alpha metadata = %+v, want English and academic", alpha)
	}
	if len(alpha.TopKeywords) == 0 || alpha.TopKeywords[0] != "circulation:2" {
		t.Errorf("alpha keywords = %v, want circulation:2 first", alpha.TopKeywords)
	}

	beta := summary.Results[1]
	if beta.Status != "error" {
		t.Errorf("beta status = %q, want error", beta.Status)
	}
	if beta.ErrorMessage != "failed to open PDF papers/beta.pdf: bad header" {
		t.Errorf("beta error = %q, want the processing error", beta.ErrorMessage)
	}
	if beta.OutputPath != "" {
		t.Errorf("beta output path = %q, want empty for a failed document", beta.OutputPath)
	}

	gamma := summary.Results[2]
	if gamma.Status != "error" {
		t.Errorf("gamma status = %q, want error", gamma.Status)
	}
	if gamma.ErrorMessage != "Failed to process: no text found in document" {
		t.Errorf("gamma error = %q, want the error outline's message", gamma.ErrorMessage)
	}
	if gamma.HeadingCount != 0 {
		t.Errorf("gamma heading count = %d, want 0 for an error outline", gamma.HeadingCount)
	}
}
