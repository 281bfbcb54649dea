package outline

import (
	"sort"
	"strings"

	"github.com/dtnitsch/pdf-outline-parser/models"
	"github.com/dtnitsch/pdf-outline-parser/pkg/noise"
)

// DetectTitle finds the document title on the first page. firstPageLines is
// the unfiltered first-page population; filtered is the noise-filtered
// document population used for the fallback scan. bodySize and pageHeight
// come from the post-filter statistics and first page respectively.
func DetectTitle(firstPageLines, filtered []models.TextLine, bodySize, pageHeight float64) string {
	title := models.UntitledDocument

	var candidates []models.TextLine
	for _, line := range firstPageLines {
		if line.Y0 < pageHeight*0.4 &&
			line.FontSize >= bodySize*1.5 &&
			line.IsBold &&
			!noise.MetadataHeader.MatchString(line.Text) &&
			line.WordCount() > 3 {
			candidates = append(candidates, line)
		}
	}

	// Largest font first, then topmost.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].FontSize != candidates[j].FontSize {
			return candidates[i].FontSize > candidates[j].FontSize
		}
		return candidates[i].Y0 < candidates[j].Y0
	})

	if len(candidates) > 0 {
		winner := candidates[0]
		potential := strings.TrimSpace(winner.Text)

		// Titles often wrap onto a second line directly below the first.
		if len(candidates) > 1 {
			next := candidates[1]
			if next.Y0-winner.Y1 < winner.Height()*1.5 &&
				next.FontSize >= winner.FontSize*0.9 {
				potential += " " + strings.TrimSpace(next.Text)
			}
		}

		if words := len(strings.Fields(potential)); words >= 5 && words <= 40 {
			title = strings.TrimSpace(strings.ReplaceAll(potential, "\n", " "))
		}
	}

	// Fall back to the first prominent prose line when detection failed or
	// produced something too short to be a real title.
	if title == models.UntitledDocument || len(strings.Fields(title)) < 3 {
		limit := len(filtered)
		if limit > 10 {
			limit = 10
		}
		for _, line := range filtered[:limit] {
			if !noise.MetadataHeader.MatchString(line.Text) &&
				!noise.NumberedH1.MatchString(line.Text) &&
				line.WordCount() > 5 &&
				line.FontSize >= bodySize {
				title = strings.TrimSpace(line.Text)
				break
			}
		}
	}

	return title
}
