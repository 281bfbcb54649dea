package mapreduce

import (
	"fmt"
	"sort"
	"strings"
)

// isValidKeyword checks if a keyword should be included in results.
// Filters malformed tokens (unmatched delimiters, trailing special chars, unmatched quotes).
// Conservative approach: only removes obviously broken tokens, keeps technical terms like x_train.
func isValidKeyword(word string) bool {
	// Remove trailing special characters (likely incomplete tokens)
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	// Check for unmatched opening delimiters
	if strings.Contains(word, "(") && !strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") && !strings.Contains(word, "]") {
		return false
	}
	if strings.Contains(word, "{") && !strings.Contains(word, "}") {
		return false
	}

	// Check for unmatched quotes (injection/malformed strings)
	if strings.Count(word, "\"")%2 != 0 {
		return false
	}
	if strings.Count(word, "'")%2 != 0 {
		return false
	}

	return true
}

// sortedKeywords filters and sorts the aggregated counts, descending.
func sortedKeywords(wordCounts map[string]int) []struct {
	Key   string
	Value int
} {
	type kv = struct {
		Key   string
		Value int
	}

	var ss []kv
	for k, v := range wordCounts {
		if isValidKeyword(k) {
			ss = append(ss, kv{k, v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	return ss
}

// TopKeywords returns the top N keywords from aggregated word counts as formatted strings.
// Each string is formatted as "word:count" (e.g., "circulation:17").
func TopKeywords(wordCounts map[string]int, n int) []string {
	ss := sortedKeywords(wordCounts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return keywords
}

// PrintTopKeywords prints the top N keywords in a numbered list format.
func PrintTopKeywords(wordCounts map[string]int, n int) {
	ss := sortedKeywords(wordCounts)

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	for i := 0; i < limit; i++ {
		fmt.Printf("%d. %s: %d\n", i+1, ss[i].Key, ss[i].Value)
	}
}
