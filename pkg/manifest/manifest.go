package manifest

// SummaryManifest represents the structure of the batch summary JSON file.
// It provides a lightweight overview of all processed documents, their
// status, and top keywords without requiring readers to open every outline.
type SummaryManifest struct {
	GeneratedAt       string            `json:"generated_at"`
	TotalDocuments    int               `json:"total_documents"`
	Successful        int               `json:"successful"`
	Failed            int               `json:"failed"`
	AggregateKeywords []string          `json:"aggregate_keywords"`
	Results           []DocumentSummary `json:"results"`
}

// DocumentSummary represents summary information for a single document.
type DocumentSummary struct {
	Input         string   `json:"input"`
	OutputPath    string   `json:"output_path,omitempty"`
	Status        string   `json:"status"` // "success" or "error"
	ErrorMessage  string   `json:"error_message,omitempty"`
	Title         string   `json:"title,omitempty"`
	HeadingCount  int      `json:"heading_count"`
	PageCount     int      `json:"page_count,omitempty"`
	SizeBytes     int64    `json:"size_bytes,omitempty"`
	Language      string   `json:"language,omitempty"`
	IsAcademic    bool     `json:"is_academic,omitempty"`
	AcademicScore float64  `json:"academic_score,omitempty"`
	TopKeywords   []string `json:"top_keywords,omitempty"`
}
