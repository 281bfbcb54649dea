package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
	"github.com/dtnitsch/pdf-outline-parser/pkg/mapreduce"
	"github.com/dtnitsch/pdf-outline-parser/pkg/storage"
)

// DocumentResult represents the outcome of processing a single document.
// This is passed from the batch runner to avoid circular dependencies.
type DocumentResult struct {
	Input      string
	OutputPath string
	Outline    models.DocumentOutline
	Err        error
	PageCount  int
	SizeBytes  int64
	Metadata   *detector.EnrichedMetadata
	WordCounts map[string]int
}

// GenerateSummary creates the batch summary manifest next to the outline
// files. It accepts all document results, the aggregated keyword counts,
// and a storage instance. Returns the path of the written manifest.
func GenerateSummary(results []DocumentResult, aggregateKeywords map[string]int, s *storage.Storage, outputDir string) (string, error) {
	summary := SummaryManifest{
		GeneratedAt:       time.Now().Format(time.RFC3339),
		TotalDocuments:    len(results),
		AggregateKeywords: mapreduce.TopKeywords(aggregateKeywords, 25),
	}

	for _, result := range results {
		doc := DocumentSummary{
			Input:        result.Input,
			HeadingCount: result.Outline.HeadingCount(),
		}

		if result.Err != nil || result.Outline.IsError() {
			summary.Failed++
			doc.Status = "error"
			if result.Err != nil {
				doc.ErrorMessage = result.Err.Error()
			} else {
				doc.ErrorMessage = result.Outline.Outline[0].Text
			}
		} else {
			summary.Successful++
			doc.Status = "success"
			doc.OutputPath = result.OutputPath
			doc.Title = result.Outline.Title
			doc.PageCount = result.PageCount
			doc.SizeBytes = result.SizeBytes

			if result.Metadata != nil {
				doc.Language = result.Metadata.Language
				doc.IsAcademic = result.Metadata.IsAcademic()
				doc.AcademicScore = result.Metadata.AcademicScore
			}
			if result.WordCounts != nil {
				doc.TopKeywords = mapreduce.TopKeywords(result.WordCounts, 25)
			}
		}

		summary.Results = append(summary.Results, doc)
	}

	manifestPath := filepath.Join(outputDir, "summary.json")
	data, err := sonic.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(manifestPath, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}
