// Package mapreduce aggregates keyword frequencies across a batch of
// processed documents: one frequency map per outline, reduced into a single
// corpus-wide map for the batch summary.
package mapreduce

import (
	"strings"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/analytics"
)

// Map generates a word frequency map for a single document's structural
// text (title plus heading texts). Error outlines contribute nothing.
func Map(result models.DocumentOutline, a *analytics.Analytics) map[string]int {
	if result.IsError() {
		return map[string]int{}
	}

	var b strings.Builder
	b.WriteString(result.Title)
	for _, entry := range result.Outline {
		b.WriteString(" ")
		b.WriteString(entry.Text)
	}

	return a.WordFrequency(b.String())
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
