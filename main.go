package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/pdf-outline-parser/internal/extract"
	"github.com/dtnitsch/pdf-outline-parser/internal/runs"
)

func main() {
	app := &cli.App{
		Name:  "pdf-outline-parser",
		Usage: "Infer document outlines (title and headings) from PDF text layout",
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract the outline of a single PDF and print it as JSON",
				ArgsUsage: "<file.pdf>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the outline to `FILE` instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "suppress progress logging",
					},
				},
				Action: extract.ExtractAction,
			},
			{
				Name:  "batch",
				Usage: "Extract outlines for every PDF in a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input-dir",
						Aliases: []string{"i"},
						Value:   "input",
						Usage:   "directory containing PDF files",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Value:   "output",
						Usage:   "directory for outline JSON files and the summary manifest",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Value:   4,
						Usage:   "number of concurrent extraction workers",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file seeding input-dir, output-dir and workers",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Value: ".outline-cache",
						Usage: "directory for the content-hash outline cache",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Value: "168h",
						Usage: "maximum age of cached outlines before re-extraction",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "ignore cached outlines and re-extract everything",
					},
					&cli.StringFlag{
						Name:  "output-mode",
						Value: "text",
						Usage: "run summary format: text or json",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "suppress progress logging and keyword listing",
					},
				},
				Action: extract.BatchAction,
			},
			{
				Name:  "runs",
				Usage: "Inspect the history of batch extraction runs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List recent runs",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum number of runs to show",
							},
							&cli.BoolFlag{
								Name:  "today",
								Usage: "only show runs created today",
							},
							&cli.BoolFlag{
								Name:  "failed",
								Usage: "only show runs with failed documents",
							},
						},
						Action: runs.ListAction,
					},
					{
						Name:      "show",
						Usage:     "Show per-document results of a run (defaults to the latest)",
						ArgsUsage: "[run-id]",
						Action:    runs.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
