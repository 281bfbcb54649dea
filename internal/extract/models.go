package extract

import (
	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
)

type Job struct {
	Path string
}

// Result holds the outcome of a processed job.
type Result struct {
	Input      string
	OutputPath string
	Outline    models.DocumentOutline
	Error      error
	ErrorType  string
	PageCount  int
	SizeBytes  int64
	Metadata   *detector.EnrichedMetadata
	WordCounts map[string]int
	DurationMS int64
	CacheHit   bool
}

// ResultOutput is the structured output for a single document.
type ResultOutput struct {
	Input      string `json:"input"`
	OutputPath string `json:"output_path,omitempty"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	ErrorType  string `json:"error_type,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status"`
	Results []ResultOutput `json:"results"`
	Stats   Stats          `json:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalDocuments   int      `json:"total_documents"`
	Successful       int      `json:"successful"`
	Failed           int      `json:"failed"`
	TotalTimeSeconds float64  `json:"total_time_seconds"`
	TopKeywords      []string `json:"top_keywords,omitempty"`
}
