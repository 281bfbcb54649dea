package runs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/pdf-outline-parser/pkg/db"
)

// ListAction prints recent extraction runs as a table.
func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var runs []dbpkg.Run
	if c.Bool("today") || c.Bool("failed") {
		runs, err = database.QueryRuns(c.Bool("today"), c.Bool("failed"))
	} else {
		runs, err = database.ListRuns(c.Int("limit"))
	}
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-6s %-8s %-8s %-8s %-30s\n",
		"ID", "Created", "Docs", "Success", "Failed", "Workers", "Input Dir")
	fmt.Println(strings.Repeat("-", 92))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-6d %-8d %-8d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.DocumentCount,
			r.SuccessCount,
			r.FailedCount,
			r.WorkerCount,
			r.InputDir,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'pdf-outline-parser runs show <id>' to see per-document results\n")

	return nil
}

// ShowAction prints the per-document results of a single run.
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := runIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	results, err := database.GetRunResults(runID)
	if err != nil {
		return fmt.Errorf("failed to get run results: %w", err)
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Printf("  Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Input:     %s\n", run.InputDir)
	fmt.Printf("  Output:    %s\n", run.OutputDir)
	fmt.Printf("  Documents: %d (%d success, %d failed)\n", run.DocumentCount, run.SuccessCount, run.FailedCount)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No document results recorded for this run")
		return nil
	}

	fmt.Printf("%-30s %-8s %-8s %-8s %-6s %s\n",
		"Document", "Status", "Headings", "Time(ms)", "Cache", "Title")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range results {
		cache := ""
		if r.CacheHit {
			cache = "hit"
		}
		detail := r.Title
		if r.Status != "success" && r.ErrorMessage != "" {
			detail = r.ErrorMessage
		}
		fmt.Printf("%-30s %-8s %-8d %-8d %-6s %s\n",
			truncate(filepath.Base(r.Path), 30),
			r.Status,
			r.HeadingCount,
			r.DurationMS,
			cache,
			truncate(detail, 50),
		)
	}

	return nil
}

// runIDOrLatest resolves the run ID from the first CLI argument, falling
// back to the most recent run when no argument is given.
func runIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	arg := c.Args().First()
	if arg != "" {
		runID, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Invalid run ID %q\n", arg)
			os.Exit(1)
		}
		return runID, nil
	}

	runs, err := database.ListRuns(1)
	if err != nil {
		return 0, fmt.Errorf("failed to find latest run: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs found")
		os.Exit(0)
	}
	return runs[0].RunID, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
