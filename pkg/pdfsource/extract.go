package pdfsource

import (
	"fmt"

	"github.com/tsawler/tabula/reader"

	"github.com/dtnitsch/pdf-outline-parser/models"
)

// ExtractDocument opens a PDF and returns the page dimensions plus every
// text line in reading order. Pages that yield no fragments simply
// contribute no lines; that is reportable downstream, not an error here.
func ExtractDocument(path string) (*models.Document, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer r.Close()

	pageCount, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("failed to read page count: %w", err)
	}

	doc := &models.Document{}
	for i := 0; i < pageCount; i++ {
		page, err := r.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("failed to load page %d: %w", i, err)
		}

		width, err := page.Width()
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d width: %w", i, err)
		}
		height, err := page.Height()
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d height: %w", i, err)
		}
		doc.Pages = append(doc.Pages, models.PageInfo{Width: width, Height: height})

		fragments, err := r.ExtractTextFragments(page)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		converted := make([]Fragment, 0, len(fragments))
		for _, f := range fragments {
			// PDF coordinates grow upward from the bottom edge; the
			// pipeline works top-origin.
			converted = append(converted, Fragment{
				Text:     f.Text,
				FontSize: f.FontSize,
				FontName: f.FontName,
				X0:       f.X,
				Y0:       height - (f.Y + f.Height),
				X1:       f.X + f.Width,
				Y1:       height - f.Y,
			})
		}

		doc.Lines = append(doc.Lines, AssembleLines(converted, i)...)
	}

	return doc, nil
}
