package extract

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/dtnitsch/pdf-outline-parser/internal/common"
	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/analytics"
	"github.com/dtnitsch/pdf-outline-parser/pkg/caching"
	"github.com/dtnitsch/pdf-outline-parser/pkg/db"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
	"github.com/dtnitsch/pdf-outline-parser/pkg/mapreduce"
	"github.com/dtnitsch/pdf-outline-parser/pkg/outline"
	"github.com/dtnitsch/pdf-outline-parser/pkg/pdfsource"
	"github.com/dtnitsch/pdf-outline-parser/pkg/storage"
)

// formatKeywordsAsJSON formats word counts as a JSON array for database
// storage. Uses mapreduce.TopKeywords() to get the top N keywords.
func formatKeywordsAsJSON(counts map[string]int, limit int) string {
	keywords := mapreduce.TopKeywords(counts, limit)
	jsonBytes, err := sonic.Marshal(keywords)
	if err != nil {
		return ""
	}
	return string(jsonBytes)
}

func run(logger *slog.Logger, config *models.BatchConfig, paths []string, s *storage.Storage, cache *caching.Cache, det *detector.Detector, a *analytics.Analytics, database *db.DB, runID int64, force bool) ([]Result, map[string]int, error) {
	logger.Info("Starting concurrent extraction phase", "document_count", len(paths), "workers", config.WorkerCount, "force", force)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(paths))
	results := make(chan Result, len(paths))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(w, logger, config, s, cache, det, a, database, runID, force, &wg, jobs, results)
	}

	for _, path := range paths {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extraction workers finished")

	allResults := make([]Result, 0, len(paths))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more jobs failed")
		}
	}

	logger.Info("Starting MapReduce phase")
	intermediateResults := []map[string]int{}
	for _, result := range allResults {
		if result.WordCounts != nil {
			intermediateResults = append(intermediateResults, result.WordCounts)
		}
	}
	finalWordCounts := mapreduce.Reduce(intermediateResults)

	return allResults, finalWordCounts, runErr
}

func worker(id int, logger *slog.Logger, config *models.BatchConfig, s *storage.Storage, cache *caching.Cache, det *detector.Detector, a *analytics.Analytics, database *db.DB, runID int64, force bool, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "path", job.Path)
		results <- processDocument(id, logger, job.Path, config, s, cache, det, a, database, runID, force)
	}
}

func processDocument(id int, logger *slog.Logger, path string, config *models.BatchConfig, s *storage.Storage, cache *caching.Cache, det *detector.Detector, a *analytics.Analytics, database *db.DB, runID int64, force bool) Result {
	start := time.Now()
	result := Result{Input: path}
	outputPath := common.OutputPathFor(path, config.OutputDir)

	raw, err := s.ReadFile(path)
	if err != nil {
		logger.Error("Error reading document", "worker_id", id, "path", path, "error", err)
		result.Error = err
		result.ErrorType = "read_error"
		result.Outline = saveErrorOutline(logger, s, outputPath, err)
		result.DurationMS = time.Since(start).Milliseconds()
		return result
	}
	result.SizeBytes = int64(len(raw))

	hash := common.ContentHash(raw)

	var jsonData []byte
	if !force && cache != nil {
		if cached, ok := cache.Get(hash); ok {
			var outlineResult models.DocumentOutline
			if err := sonic.Unmarshal(cached, &outlineResult); err == nil {
				logger.Info("Cached outline found, reusing it", "worker_id", id, "path", path)
				result.CacheHit = true
				result.Outline = outlineResult
				jsonData = cached

				// Page count and analysis are not recomputed on a cache
				// hit; pull what the previous run recorded.
				if database != nil {
					if record, dbErr := database.GetDocumentByHash(hash); dbErr == nil && record != nil {
						result.PageCount = record.PageCount
					}
				}
			} else {
				logger.Warn("Cached outline is corrupt, re-extracting", "worker_id", id, "path", path, "error", err)
			}
		}
	}

	if !result.CacheHit {
		doc, extractErr := pdfsource.ExtractDocument(path)
		if extractErr != nil {
			logger.Error("Error extracting document", "worker_id", id, "path", path, "error", extractErr)
			result.Error = extractErr
			result.ErrorType = "extract_error"
			result.Outline = saveErrorOutline(logger, s, outputPath, extractErr)
			result.DurationMS = time.Since(start).Milliseconds()
			recordResult(logger, database, runID, path, hash, &result)
			return result
		}
		result.PageCount = len(doc.Pages)
		result.Outline = outline.Extract(doc)
		result.Metadata = det.Analyze(doc)

		var marshalErr error
		jsonData, marshalErr = sonic.MarshalIndent(result.Outline, "", "  ")
		if marshalErr != nil {
			logger.Error("Error marshalling outline", "worker_id", id, "path", path, "error", marshalErr)
			result.Error = marshalErr
			result.ErrorType = "marshal_error"
			result.Outline = saveErrorOutline(logger, s, outputPath, marshalErr)
			result.DurationMS = time.Since(start).Milliseconds()
			recordResult(logger, database, runID, path, hash, &result)
			return result
		}
	}

	result.WordCounts = mapreduce.Map(result.Outline, a)

	if err := s.SaveFile(outputPath, jsonData); err != nil {
		logger.Error("Error saving outline", "worker_id", id, "path", outputPath, "error", err)
		result.Error = err
		result.ErrorType = "save_error"
		result.DurationMS = time.Since(start).Milliseconds()
		recordResult(logger, database, runID, path, hash, &result)
		return result
	}
	result.OutputPath = outputPath

	if cache != nil && !result.CacheHit {
		if err := cache.Set(hash, jsonData); err != nil {
			logger.Warn("Failed to cache outline", "path", path, "error", err)
		}
	}

	result.DurationMS = time.Since(start).Milliseconds()
	recordResult(logger, database, runID, path, hash, &result)
	logger.Info("Worker finished job", "worker_id", id, "path", path, "headings", result.Outline.HeadingCount(), "cache_hit", result.CacheHit)
	return result
}

// saveErrorOutline writes the error outline to the document's output path
// so a failed document still produces one output file per input, the same
// shape a downstream consumer gets from a processing failure inside the
// pipeline itself. Returns the outline for the in-memory result.
func saveErrorOutline(logger *slog.Logger, s *storage.Storage, outputPath string, failure error) models.DocumentOutline {
	errorOutline := models.NewErrorOutline(fmt.Sprintf("Failed to process: %v", failure))

	data, err := sonic.MarshalIndent(errorOutline, "", "  ")
	if err != nil {
		logger.Warn("Failed to marshal error outline", "path", outputPath, "error", err)
		return errorOutline
	}
	if err := s.SaveFile(outputPath, data); err != nil {
		logger.Warn("Failed to save error outline", "path", outputPath, "error", err)
	}
	return errorOutline
}

// recordResult persists the document record and per-run outcome. Database
// failures are logged but never fail the job itself.
func recordResult(logger *slog.Logger, database *db.DB, runID int64, path, hash string, result *Result) {
	if database == nil {
		return
	}

	documentID, err := database.InsertDocument(path, hash, result.SizeBytes, result.PageCount)
	if err != nil {
		logger.Warn("Failed to insert document to DB", "path", path, "error", err)
		return
	}

	status := "success"
	errorMessage := ""
	if result.Error != nil {
		status = "failed"
		errorMessage = result.Error.Error()
	} else if result.Outline.IsError() {
		status = "failed"
		errorMessage = result.Outline.Outline[0].Text
	}

	if status == "success" && result.Metadata != nil {
		err = database.UpdateDocumentAnalysis(
			documentID,
			result.Outline.Title,
			result.Outline.HeadingCount(),
			result.Metadata.Language,
			result.Metadata.IsAcademic(),
			result.Metadata.AcademicScore,
			formatKeywordsAsJSON(result.WordCounts, 25),
		)
		if err != nil {
			logger.Warn("Failed to update document analysis in DB", "path", path, "error", err)
		}
	}

	if runID > 0 {
		err = database.InsertRunResult(runID, documentID, status, errorMessage, result.Outline.HeadingCount(), result.DurationMS, result.CacheHit)
		if err != nil {
			logger.Warn("Failed to insert run result to DB", "path", path, "error", err)
		}
	}
}
