// Package pdfsource extracts positioned text lines from PDF files. It wraps
// the tabula reader and normalizes its span-level fragments into the
// TextLine records the outline pipeline consumes. All coordinates leaving
// this package are top-origin page points.
package pdfsource

import (
	"sort"
	"strings"

	"github.com/dtnitsch/pdf-outline-parser/models"
)

// boldMarkers are the font name substrings that mark a bold face.
var boldMarkers = []string{"bold", "demi", "heavy", "black", "extrabold"}

// Fragment is one span of text with its styling and top-origin bounding
// box, the unit the line assembler works over.
type Fragment struct {
	Text     string
	FontSize float64
	FontName string

	X0, Y0, X1, Y1 float64
}

// AssembleLines groups fragments into visual lines and produces one
// TextLine per non-empty line, tagged with the given page index. Fragments
// belong to the same line when their tops sit within half a fragment height
// of the line's first fragment. Within a line, fragments are concatenated
// left to right without separators.
func AssembleLines(fragments []Fragment, page int) []models.TextLine {
	if len(fragments) == 0 {
		return nil
	}

	ordered := make([]Fragment, len(fragments))
	copy(ordered, fragments)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Y0 != ordered[j].Y0 {
			return ordered[i].Y0 < ordered[j].Y0
		}
		return ordered[i].X0 < ordered[j].X0
	})

	var groups [][]Fragment
	for _, frag := range ordered {
		if len(groups) > 0 && sameLine(groups[len(groups)-1][0], frag) {
			groups[len(groups)-1] = append(groups[len(groups)-1], frag)
			continue
		}
		groups = append(groups, []Fragment{frag})
	}

	var lines []models.TextLine
	for _, group := range groups {
		if line, ok := mergeGroup(group, page); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func sameLine(first, frag Fragment) bool {
	tolerance := (first.Y1 - first.Y0) * 0.5
	if tolerance <= 0 {
		tolerance = 1
	}
	diff := frag.Y0 - first.Y0
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}

// mergeGroup collapses one fragment group into a TextLine. Empty text after
// trimming produces no record.
func mergeGroup(group []Fragment, page int) (models.TextLine, bool) {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].X0 < group[j].X0
	})

	var b strings.Builder
	for _, frag := range group {
		b.WriteString(frag.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return models.TextLine{}, false
	}

	line := models.TextLine{
		Text:     text,
		FontSize: modalSize(group),
		FontName: modalName(group),
		X0:       group[0].X0,
		Y0:       group[0].Y0,
		X1:       group[0].X1,
		Y1:       group[0].Y1,
		Page:     page,
	}
	for _, frag := range group[1:] {
		if frag.X0 < line.X0 {
			line.X0 = frag.X0
		}
		if frag.Y0 < line.Y0 {
			line.Y0 = frag.Y0
		}
		if frag.X1 > line.X1 {
			line.X1 = frag.X1
		}
		if frag.Y1 > line.Y1 {
			line.Y1 = frag.Y1
		}
	}

	lower := strings.ToLower(line.FontName)
	for _, marker := range boldMarkers {
		if strings.Contains(lower, marker) {
			line.IsBold = true
			break
		}
	}

	return line, true
}

// modalSize returns the most frequent font size in the group, ties broken
// by the fragment seen first.
func modalSize(group []Fragment) float64 {
	counts := make(map[float64]int)
	var order []float64
	for _, frag := range group {
		if counts[frag.FontSize] == 0 {
			order = append(order, frag.FontSize)
		}
		counts[frag.FontSize]++
	}

	best := 0.0
	bestCount := 0
	for _, size := range order {
		if counts[size] > bestCount {
			best = size
			bestCount = counts[size]
		}
	}
	return best
}

// modalName returns the most frequent font name in the group, ties broken
// by the fragment seen first.
func modalName(group []Fragment) string {
	counts := make(map[string]int)
	var order []string
	for _, frag := range group {
		if counts[frag.FontName] == 0 {
			order = append(order, frag.FontName)
		}
		counts[frag.FontName]++
	}

	best := ""
	bestCount := 0
	for _, name := range order {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}
