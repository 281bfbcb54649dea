// Package models defines data structures shared across the extraction pipeline.
package models

import "strings"

// TextLine is a single recognized line of text with its typographic and
// geometric properties. Coordinates are top-origin page points: y0 is the
// distance from the top edge of the page, so y0 < y1 always.
type TextLine struct {
	Text     string
	FontSize float64
	FontName string
	IsBold   bool

	X0, Y0, X1, Y1 float64

	// Page is the 0-based page index the line appears on.
	Page int
}

// Width returns the horizontal extent of the line's bounding box.
func (l TextLine) Width() float64 {
	return l.X1 - l.X0
}

// Height returns the vertical extent of the line's bounding box.
func (l TextLine) Height() float64 {
	return l.Y1 - l.Y0
}

// WordCount returns the number of whitespace-separated words on the line.
func (l TextLine) WordCount() int {
	return len(strings.Fields(l.Text))
}

// PageInfo describes the dimensions of a single page in points.
type PageInfo struct {
	Width  float64
	Height float64
}

// Document is the input contract for the outline pipeline: the page
// dimensions plus the flat, reading-ordered line sequence produced by the
// extraction layer. A document with no pages or no lines is reportable but
// never a crash.
type Document struct {
	Pages []PageInfo
	Lines []TextLine
}

// FirstPageLines returns the lines on page 0 in document order.
func (d *Document) FirstPageLines() []TextLine {
	var lines []TextLine
	for _, line := range d.Lines {
		if line.Page == 0 {
			lines = append(lines, line)
		}
	}
	return lines
}

// Page returns the dimensions for the given page index, falling back to the
// first page when the index is out of range.
func (d *Document) Page(index int) PageInfo {
	if index >= 0 && index < len(d.Pages) {
		return d.Pages[index]
	}
	if len(d.Pages) > 0 {
		return d.Pages[0]
	}
	return PageInfo{}
}
