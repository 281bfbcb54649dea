package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run represents one extraction invocation.
type Run struct {
	RunID         int64
	CreatedAt     time.Time
	DocumentCount int
	SuccessCount  int
	FailedCount   int
	InputDir      string
	OutputDir     string
	WorkerCount   int
}

// CreateRun creates a new run record.
func (db *DB) CreateRun(documentCount int, inputDir, outputDir string, workerCount int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (document_count, input_dir, output_dir, worker_count)
		VALUES (?, ?, ?, ?)
	`, documentCount, inputDir, outputDir, workerCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	return runID, nil
}

// UpdateRunStats updates the success and failed counts for a run.
func (db *DB) UpdateRunStats(runID int64, successCount, failedCount int) error {
	_, err := db.Exec(`
		UPDATE runs
		SET success_count = ?, failed_count = ?
		WHERE run_id = ?
	`, successCount, failedCount, runID)
	if err != nil {
		return fmt.Errorf("failed to update run stats: %w", err)
	}
	return nil
}

// InsertRunResult records a per-document outcome within a run.
func (db *DB) InsertRunResult(runID, documentID int64, status, errorMessage string, headingCount int, durationMS int64, cacheHit bool) error {
	_, err := db.Exec(`
		INSERT INTO run_results (run_id, document_id, status, error_message, heading_count, duration_ms, cache_hit)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, documentID, status, errorMessage, headingCount, durationMS, cacheHit)
	if err != nil {
		return fmt.Errorf("failed to insert run result: %w", err)
	}
	return nil
}

// GetRunByID retrieves a run by its ID.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, created_at, document_count, success_count, failed_count,
		       input_dir, output_dir, worker_count
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(
		&r.RunID,
		&r.CreatedAt,
		&r.DocumentCount,
		&r.SuccessCount,
		&r.FailedCount,
		&r.InputDir,
		&r.OutputDir,
		&r.WorkerCount,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// RunResult represents a result within a run.
type RunResult struct {
	Path         string
	Title        string
	Status       string
	ErrorMessage string
	HeadingCount int
	DurationMS   int64
	CacheHit     bool
}

// GetRunResults retrieves all results for a run in insertion order.
func (db *DB) GetRunResults(runID int64) ([]RunResult, error) {
	rows, err := db.Query(`
		SELECT d.path, COALESCE(d.title, ''), rr.status, rr.error_message,
		       rr.heading_count, rr.duration_ms, rr.cache_hit
		FROM run_results rr
		JOIN documents d ON rr.document_id = d.document_id
		WHERE rr.run_id = ?
		ORDER BY rr.result_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var r RunResult
		var errorMessage sql.NullString
		if err := rows.Scan(&r.Path, &r.Title, &r.Status, &errorMessage,
			&r.HeadingCount, &r.DurationMS, &r.CacheHit); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		if errorMessage.Valid {
			r.ErrorMessage = errorMessage.String
		}
		results = append(results, r)
	}

	return results, nil
}

// ListRuns retrieves runs ordered by most recent first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, document_count, success_count, failed_count,
		       input_dir, output_dir, worker_count
		FROM runs
		ORDER BY created_at DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.DocumentCount, &r.SuccessCount,
			&r.FailedCount, &r.InputDir, &r.OutputDir, &r.WorkerCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, nil
}

// QueryRuns filters runs based on criteria.
func (db *DB) QueryRuns(todayOnly bool, failedOnly bool) ([]Run, error) {
	query := `
		SELECT run_id, created_at, document_count, success_count, failed_count,
		       input_dir, output_dir, worker_count
		FROM runs
	`

	var conditions []string
	if todayOnly {
		conditions = append(conditions, "DATE(created_at) = DATE('now')")
	}
	if failedOnly {
		conditions = append(conditions, "failed_count > 0")
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY created_at DESC"

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.DocumentCount, &r.SuccessCount,
			&r.FailedCount, &r.InputDir, &r.OutputDir, &r.WorkerCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, nil
}
