// Package layout derives per-document typographic statistics: the body font
// size, the three heading-size thresholds, the left-aligned column origins,
// and the average vertical line spacing. All values are computed once per
// document and read-only afterwards.
package layout

import (
	"math"
	"sort"

	"github.com/dtnitsch/pdf-outline-parser/models"
)

// minMeaningfulSize filters out sub-5pt artifacts before any statistic.
const minMeaningfulSize = 5.0

// Statistics holds the derived typographic profile of one document.
type Statistics struct {
	BodyFontSize float64
	H1Threshold  float64
	H2Threshold  float64
	H3Threshold  float64
	MaxFontSize  float64

	// ColumnX0s are the detected left-edge column origins, ascending.
	// One entry for single-column layouts, two for two-column layouts.
	ColumnX0s []float64

	AverageLineSpacing float64
}

// HasSignal reports whether the document produced enough font data to
// analyze. When false, every threshold is zero and no columns were found.
func (s Statistics) HasSignal() bool {
	return s.BodyFontSize > 0
}

// BodyFontSize returns the modal rounded font size among lines larger than
// the artifact cutoff, or 0 when no such line exists. Ties go to the size
// seen first in document order.
func BodyFontSize(lines []models.TextLine) float64 {
	counts := make(map[float64]int)
	var order []float64

	for _, line := range lines {
		if line.FontSize <= minMeaningfulSize {
			continue
		}
		size := round2(line.FontSize)
		if counts[size] == 0 {
			order = append(order, size)
		}
		counts[size]++
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

// Analyze computes the full statistics over the given line population.
// The pipeline passes noise-filtered lines here; body size for the noise
// decisions themselves is computed separately over the raw population via
// BodyFontSize, preserving the two-pass asymmetry of the heuristic.
func Analyze(lines []models.TextLine, pageWidth float64) Statistics {
	body := BodyFontSize(lines)
	if body == 0 {
		return Statistics{}
	}

	sizes := distinctSizesDescending(lines)

	h1 := body * 1.3
	h2 := body * 1.15
	h3 := body * 1.05

	// Raise each threshold to the largest observed size in its band.
	// First match wins: the biggest headings are rare and large.
	for _, size := range sizes {
		if size > body*1.5 {
			h1 = math.Max(h1, size)
			break
		}
	}
	for _, size := range sizes {
		if size < h1*0.95 && size > body*1.2 {
			h2 = math.Max(h2, size)
			break
		}
	}
	for _, size := range sizes {
		if size < h2*0.95 && size > body*1.05 {
			h3 = math.Max(h3, size)
			break
		}
	}

	h1 = math.Max(h1, body)
	h2 = math.Max(h2, body)
	h3 = math.Max(h3, body)

	// Enforce strict ordering by shrinking colliding thresholds.
	if h2 >= h1 {
		h2 = h1 * 0.95
	}
	if h3 >= h2 {
		h3 = h2 * 0.95
	}

	maxSize := body
	if len(sizes) > 0 {
		maxSize = sizes[0]
	}

	return Statistics{
		BodyFontSize:       body,
		H1Threshold:        h1,
		H2Threshold:        h2,
		H3Threshold:        h3,
		MaxFontSize:        maxSize,
		ColumnX0s:          detectColumns(lines, body, pageWidth),
		AverageLineSpacing: AverageLineSpacing(lines),
	}
}

// AverageLineSpacing returns the mean vertical gap between consecutive
// lines, ignoring non-positive gaps and jumps larger than three line
// heights (paragraph-internal overlap and cross-column/page transitions).
func AverageLineSpacing(lines []models.TextLine) float64 {
	if len(lines) < 2 {
		return 0
	}

	total := 0.0
	count := 0
	for i := 0; i < len(lines)-1; i++ {
		gap := lines[i+1].Y0 - lines[i].Y1
		if gap > 0 && gap < lines[i].Height()*3 {
			total += gap
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// detectColumns finds the left-edge x origins of the text columns. Only
// near-body-size lines wider than 20% of the page count as column evidence;
// narrow fragments and labels would otherwise pollute the clusters.
func detectColumns(lines []models.TextLine, body, pageWidth float64) []float64 {
	var x0s []float64
	for _, line := range lines {
		if line.FontSize >= body*0.95 && line.FontSize <= body*1.05 &&
			line.Width() > pageWidth*0.2 {
			x0s = append(x0s, line.X0)
		}
	}

	if len(x0s) == 0 {
		// Last resort: assume a left margin at 10% of the page.
		return []float64{pageWidth * 0.1}
	}

	reps := clusterX0s(x0s)

	if len(reps) >= 2 {
		left := reps[0]
		// The right column must sit well past the left one; of the
		// candidates, prefer the one nearest the horizontal center.
		right := 0.0
		bestDist := math.Inf(1)
		for _, rep := range reps {
			if rep <= left+pageWidth*0.3 {
				continue
			}
			if dist := math.Abs(rep - pageWidth/2); dist < bestDist {
				bestDist = dist
				right = rep
			}
		}
		if right > 0 && math.Abs(right-left) > pageWidth*0.3 {
			return []float64{left, right}
		}
		return []float64{left}
	}

	if len(reps) == 1 {
		return []float64{reps[0]}
	}

	// Clustering produced nothing usable; fall back to the most common
	// raw origin.
	return []float64{modeOf(x0s)}
}

// clusterX0s rounds origins to the nearest 10 points, merges rounded values
// closer than 15 points into clusters, and returns each cluster's mean,
// sorted ascending.
func clusterX0s(x0s []float64) []float64 {
	seen := make(map[float64]bool)
	var rounded []float64
	for _, x := range x0s {
		r := math.Round(x/10) * 10
		if !seen[r] {
			seen[r] = true
			rounded = append(rounded, r)
		}
	}
	sort.Float64s(rounded)

	var clusters [][]float64
	for _, r := range rounded {
		if len(clusters) > 0 && nearCluster(clusters[len(clusters)-1], r) {
			clusters[len(clusters)-1] = append(clusters[len(clusters)-1], r)
		} else {
			clusters = append(clusters, []float64{r})
		}
	}

	reps := make([]float64, 0, len(clusters))
	for _, cluster := range clusters {
		sum := 0.0
		for _, v := range cluster {
			sum += v
		}
		reps = append(reps, sum/float64(len(cluster)))
	}
	sort.Float64s(reps)
	return reps
}

func nearCluster(cluster []float64, x float64) bool {
	for _, c := range cluster {
		if math.Abs(x-c) < 15 {
			return true
		}
	}
	return false
}

// modeOf returns the most frequent rounded value, ties to first seen.
func modeOf(values []float64) float64 {
	counts := make(map[float64]int)
	var order []float64
	for _, v := range values {
		r := round2(v)
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	best := 0.0
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// distinctSizesDescending returns the unique rounded sizes above the
// artifact cutoff, largest first.
func distinctSizesDescending(lines []models.TextLine) []float64 {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, line := range lines {
		if line.FontSize <= minMeaningfulSize {
			continue
		}
		size := round2(line.FontSize)
		if !seen[size] {
			seen[size] = true
			sizes = append(sizes, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	return sizes
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
