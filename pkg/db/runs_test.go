package db

import (
	"testing"
)

func TestRunLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun(2, "/input", "/output", 4)
	if err != nil {
		t.Fatalf("CreateRun() error: %v", err)
	}

	docA, err := db.InsertDocument("/input/a.pdf", "hash-a", 10, 2)
	if err != nil {
		t.Fatalf("InsertDocument() error: %v", err)
	}
	docB, err := db.InsertDocument("/input/b.pdf", "hash-b", 20, 5)
	if err != nil {
		t.Fatalf("InsertDocument() error: %v", err)
	}

	if err := db.InsertRunResult(runID, docA, "success", "", 7, 120, false); err != nil {
		t.Fatalf("InsertRunResult() error: %v", err)
	}
	if err := db.InsertRunResult(runID, docB, "error", "Failed to process: no pages", 0, 5, false); err != nil {
		t.Fatalf("InsertRunResult() error: %v", err)
	}
	if err := db.UpdateRunStats(runID, 1, 1); err != nil {
		t.Fatalf("UpdateRunStats() error: %v", err)
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error: %v", err)
	}
	if run.SuccessCount != 1 || run.FailedCount != 1 {
		t.Errorf("run stats = %d/%d, want 1/1", run.SuccessCount, run.FailedCount)
	}
	if run.InputDir != "/input" || run.WorkerCount != 4 {
		t.Errorf("run metadata = %+v", run)
	}

	results, err := db.GetRunResults(runID)
	if err != nil {
		t.Fatalf("GetRunResults() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Path != "/input/a.pdf" || results[0].Status != "success" || results[0].HeadingCount != 7 {
		t.Errorf("result 0 = %+v", results[0])
	}
	if results[1].Status != "error" || results[1].ErrorMessage == "" {
		t.Errorf("result 1 = %+v", results[1])
	}
}

func TestInsertRunResultDuplicateDocument(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun(1, "/input", "/output", 1)
	if err != nil {
		t.Fatalf("CreateRun() error: %v", err)
	}
	docID, err := db.InsertDocument("/input/a.pdf", "hash-a", 10, 2)
	if err != nil {
		t.Fatalf("InsertDocument() error: %v", err)
	}

	if err := db.InsertRunResult(runID, docID, "success", "", 3, 10, false); err != nil {
		t.Fatalf("first InsertRunResult() error: %v", err)
	}
	if err := db.InsertRunResult(runID, docID, "success", "", 3, 10, false); err == nil {
		t.Error("duplicate (run, document) result insert succeeded, want unique violation")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 3; i++ {
		if _, err := db.CreateRun(i+1, "/input", "/output", 2); err != nil {
			t.Fatalf("CreateRun() error: %v", err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("ListRuns(2) returned %d runs", len(runs))
	}

	all, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns(0) error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListRuns(0) returned %d runs, want 3", len(all))
	}
}

func TestQueryRunsFailedOnly(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	okRun, err := db.CreateRun(1, "/input", "/output", 1)
	if err != nil {
		t.Fatalf("CreateRun() error: %v", err)
	}
	if err := db.UpdateRunStats(okRun, 1, 0); err != nil {
		t.Fatalf("UpdateRunStats() error: %v", err)
	}

	badRun, err := db.CreateRun(1, "/input", "/output", 1)
	if err != nil {
		t.Fatalf("CreateRun() error: %v", err)
	}
	if err := db.UpdateRunStats(badRun, 0, 1); err != nil {
		t.Fatalf("UpdateRunStats() error: %v", err)
	}

	failed, err := db.QueryRuns(false, true)
	if err != nil {
		t.Fatalf("QueryRuns() error: %v", err)
	}
	if len(failed) != 1 || failed[0].RunID != badRun {
		t.Errorf("QueryRuns(failedOnly) = %+v, want only run %d", failed, badRun)
	}
}
