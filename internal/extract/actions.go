package extract

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/pdf-outline-parser/internal/common"
	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/analytics"
	"github.com/dtnitsch/pdf-outline-parser/pkg/caching"
	"github.com/dtnitsch/pdf-outline-parser/pkg/db"
	"github.com/dtnitsch/pdf-outline-parser/pkg/detector"
	"github.com/dtnitsch/pdf-outline-parser/pkg/manifest"
	"github.com/dtnitsch/pdf-outline-parser/pkg/mapreduce"
	"github.com/dtnitsch/pdf-outline-parser/pkg/outline"
	"github.com/dtnitsch/pdf-outline-parser/pkg/pdfsource"
	"github.com/dtnitsch/pdf-outline-parser/pkg/storage"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ExtractAction processes a single PDF and prints its outline as JSON.
func ExtractAction(c *cli.Context) error {
	logger := newLogger(c)

	path := c.Args().First()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: No input file provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  pdf-outline-parser extract paper.pdf")
		fmt.Fprintln(os.Stderr, "  pdf-outline-parser extract paper.pdf --output outline.json")
		os.Exit(1)
	}

	if !common.IsPDF(path) {
		logger.Warn("input does not have a .pdf extension, attempting anyway", "path", path)
	}

	var result models.DocumentOutline
	doc, err := pdfsource.ExtractDocument(path)
	if err != nil {
		logger.Error("failed to extract document", "path", path, "error", err)
		result = models.NewErrorOutline(fmt.Sprintf("Failed to process: %v", err))
	} else {
		result = outline.Extract(doc)
	}

	jsonData, err := sonic.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("failed to marshal outline", "path", path, "error", err)
		os.Exit(2)
	}

	if outputPath := c.String("output"); outputPath != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(outputPath, jsonData); err != nil {
			logger.Error("failed to save outline", "path", outputPath, "error", err)
			os.Exit(2)
		}
		logger.Info("Outline written", "path", outputPath)
	} else {
		fmt.Println(string(jsonData))
	}

	return nil
}

// BatchAction processes every PDF in a directory through the worker pool,
// writing one outline per document plus a summary manifest.
func BatchAction(c *cli.Context) error {
	logger := newLogger(c)
	startTime := time.Now()

	config := &models.BatchConfig{
		InputDir:    c.String("input-dir"),
		OutputDir:   c.String("output-dir"),
		WorkerCount: c.Int("workers"),
	}

	// An on-disk config file seeds defaults; explicit flags win.
	if c.IsSet("config") {
		fileConfig, err := models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config file", "path", c.String("config"), "error", err)
			os.Exit(2)
		}
		if !c.IsSet("input-dir") && fileConfig.InputDir != "" {
			config.InputDir = fileConfig.InputDir
		}
		if !c.IsSet("output-dir") && fileConfig.OutputDir != "" {
			config.OutputDir = fileConfig.OutputDir
		}
		if !c.IsSet("workers") {
			config.WorkerCount = fileConfig.WorkerCount
		}
	}

	var maxAge time.Duration
	var err error
	if c.Bool("force") {
		maxAge = 0
	} else {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	s := &storage.Storage{}
	if err := s.EnsureDir(config.OutputDir); err != nil {
		logger.Error("failed to create output directory", "path", config.OutputDir, "error", err)
		os.Exit(2)
	}

	cache, err := caching.NewCache(c.String("cache-dir"), maxAge)
	if err != nil {
		logger.Error("failed to initialize cache", "error", err)
		os.Exit(2)
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	paths, err := s.ListPDFs(config.InputDir)
	if err != nil {
		logger.Error("failed to list input directory", "path", config.InputDir, "error", err)
		os.Exit(2)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Error: No PDF files found in %s\n", config.InputDir)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  pdf-outline-parser batch --input-dir ./papers --output-dir ./outlines")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: pdf-outline-parser batch --help")
		os.Exit(1)
	}

	runID, err := database.CreateRun(len(paths), config.InputDir, config.OutputDir, config.WorkerCount)
	if err != nil {
		logger.Warn("Failed to create run record", "error", err)
	}
	logger.Info("Run created", "run_id", runID, "documents", len(paths))

	det := detector.New()
	a := &analytics.Analytics{}

	allResults, finalWordCounts, runErr := run(logger, config, paths, s, cache, det, a, database, runID, c.Bool("force"))
	if runErr != nil {
		logger.Warn("Run completed with failures", "error", runErr)
	}

	var successCount, failedCount int
	for _, r := range allResults {
		if r.Error != nil || r.Outline.IsError() {
			failedCount++
		} else {
			successCount++
		}
	}

	if runID > 0 {
		if err := database.UpdateRunStats(runID, successCount, failedCount); err != nil {
			logger.Warn("Failed to update run stats in DB", "error", err)
		}
	}

	docResults := make([]manifest.DocumentResult, 0, len(allResults))
	for _, r := range allResults {
		docResults = append(docResults, manifest.DocumentResult{
			Input:      r.Input,
			OutputPath: r.OutputPath,
			Outline:    r.Outline,
			Err:        r.Error,
			PageCount:  r.PageCount,
			SizeBytes:  r.SizeBytes,
			Metadata:   r.Metadata,
			WordCounts: r.WordCounts,
		})
	}

	manifestPath, err := manifest.GenerateSummary(docResults, finalWordCounts, s, config.OutputDir)
	if err != nil {
		logger.Error("failed to generate summary manifest", "error", err)
		os.Exit(2)
	}

	stats := Stats{
		TotalDocuments:   len(paths),
		Successful:       successCount,
		Failed:           failedCount,
		TotalTimeSeconds: time.Since(startTime).Seconds(),
		TopKeywords:      mapreduce.TopKeywords(finalWordCounts, 25),
	}

	if c.String("output-mode") == "json" {
		status := "success"
		if failedCount > 0 {
			status = "partial_failure"
		}
		if successCount == 0 {
			status = "failure"
		}
		finalOutput := FinalOutput{Status: status, Stats: stats}
		for _, r := range allResults {
			out := ResultOutput{Input: r.Input, OutputPath: r.OutputPath, Status: "success"}
			if r.Error != nil {
				out.Status = "failed"
				out.Error = r.Error.Error()
				out.ErrorType = r.ErrorType
				out.OutputPath = ""
			} else if r.Outline.IsError() {
				out.Status = "failed"
				out.Error = r.Outline.Outline[0].Text
				out.ErrorType = "outline_error"
			}
			finalOutput.Results = append(finalOutput.Results, out)
		}
		jsonData, err := sonic.MarshalIndent(finalOutput, "", "  ")
		if err != nil {
			logger.Error("failed to marshal final output", "error", err)
			os.Exit(2)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Printf("Run %d: %d/%d documents successful\n", runID, successCount, len(paths))
	fmt.Printf("Outlines: %s\n", config.OutputDir)
	fmt.Printf("Summary:  %s\n", manifestPath)

	if !c.Bool("quiet") && len(finalWordCounts) > 0 {
		fmt.Println("\nTop keywords across all documents:")
		mapreduce.PrintTopKeywords(finalWordCounts, 25)
	}

	if failedCount > 0 {
		fmt.Printf("\nNote: %d document(s) failed\n", failedCount)
		fmt.Printf("  To see details: pdf-outline-parser runs show %d\n", runID)
	}

	return nil
}
