// Package export renders decks to downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/pitchdeck-ai/platform/internal/model"
)

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename builds a download filename for the deck title.
func Filename(deckTitle, ext string) string {
	name := unsafeFilename.ReplaceAllString(deckTitle, "_")
	if name == "" {
		name = "pitch_deck"
	}
	return name + "." + ext
}

// PDF renders the deck as a paginated PDF: a title page followed by one
// page per slide with its content and speaker notes.
func PDF(deckTitle, deckDescription string, slides []model.Slide) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(deckTitle, true)
	pdf.SetMargins(20, 20, 20)

	// Title page
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 32)
	pdf.Ln(60)
	pdf.MultiCell(0, 14, deckTitle, "", "C", false)
	if deckDescription != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 14)
		pdf.MultiCell(0, 8, deckDescription, "", "C", false)
	}

	for i, slide := range slides {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 24)
		pdf.MultiCell(0, 12, slide.Title, "", "L", false)
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "", 12)
		for _, line := range strings.Split(slide.Content, "\n") {
			pdf.MultiCell(0, 6, line, "", "L", false)
		}

		if slide.SpeakerNotes != "" {
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, "Speaker notes: "+slide.SpeakerNotes, "", "L", false)
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetY(-15)
		pdf.CellFormat(0, 10, fmt.Sprintf("Slide %d of %d", i+1, len(slides)), "", 0, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
