package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/nikolayk812/foodgram/internal/domain"
)

const (
	fontFamily  = "shoppinglist"
	fontSize    = 12
	columnWidth = 250
	rowHeight   = 30
)

type rgb struct{ r, g, b int }

var (
	headerFill = rgb{128, 128, 128}
	bodyFill   = rgb{245, 245, 220}
	black      = rgb{0, 0, 0}
)

// PDF renders a two-column table on Letter pages using an embedded
// UTF-8 TrueType font, so non-Latin ingredient names render correctly.
type PDF struct {
	font []byte
}

// NewPDF loads and validates the font at fontPath. Any failure wraps
// domain.ErrFontResourceMissing and must stop the export endpoint from
// being served.
func NewPDF(fontPath string) (*PDF, error) {
	if fontPath == "" {
		return nil, fmt.Errorf("%w: font path is empty", domain.ErrFontResourceMissing)
	}

	font, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: os.ReadFile: %w", domain.ErrFontResourceMissing, err)
	}

	if err := probeFont(font); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFontResourceMissing, fontPath, err)
	}

	return &PDF{font: font}, nil
}

func (p *PDF) ContentType() string {
	return "application/pdf"
}

func (p *PDF) Extension() string {
	return "pdf"
}

func (p *PDF) Render(w io.Writer, rows []Row) error {
	// fpdf.Fpdf is not safe for concurrent use, build one per document
	doc := p.newDocument()
	drawTable(doc, rows)

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("doc.Output: %w", err)
	}

	return nil
}

// drawTable lays out the header and body rows as one grid centred on the
// page. Every row, the header included, is exactly rowHeight tall.
func drawTable(doc *fpdf.Fpdf, rows []Row) {
	tableWidth := 2.0 * columnWidth
	pageWidth, _ := doc.GetPageSize()
	left := (pageWidth - tableWidth) / 2
	doc.SetLeftMargin(left)
	doc.SetX(left)

	doc.SetDrawColor(black.r, black.g, black.b)
	doc.SetLineWidth(1)
	doc.SetTextColor(black.r, black.g, black.b)

	doc.SetFillColor(headerFill.r, headerFill.g, headerFill.b)
	doc.CellFormat(columnWidth, rowHeight, Header.Label, "1", 0, "CM", true, 0, "")
	doc.CellFormat(columnWidth, rowHeight, Header.Quantity, "1", 1, "CM", true, 0, "")

	doc.SetFillColor(bodyFill.r, bodyFill.g, bodyFill.b)
	for _, row := range rows {
		doc.CellFormat(columnWidth, rowHeight, row.Label, "1", 0, "CM", true, 0, "")
		doc.CellFormat(columnWidth, rowHeight, row.Quantity, "1", 1, "CM", true, 0, "")
	}
}

func (p *PDF) newDocument() *fpdf.Fpdf {
	doc := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitPoint, fpdf.PageSizeLetter, "")
	doc.SetAutoPageBreak(true, 2*rowHeight)
	doc.AddUTF8FontFromBytes(fontFamily, "", p.font)
	doc.SetFont(fontFamily, "", fontSize)
	doc.AddPage()
	return doc
}

// probeFont parses the font once at startup. The fpdf TrueType parser
// may panic on malformed input.
func probeFont(font []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse font: %v", r)
		}
	}()

	doc := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitPoint, fpdf.PageSizeLetter, "")
	doc.AddUTF8FontFromBytes(fontFamily, "", font)
	doc.SetFont(fontFamily, "", fontSize)
	if doc.Err() {
		return doc.Error()
	}

	return nil
}
