package report

import (
	"bytes"
	"fmt"

	"vigovia/internal/config"
	"vigovia/internal/domain"
	"vigovia/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// PDFEmitter encodes a finished page sequence with gofpdf. It owns the only
// backend-specific code in the engine; everything upstream works on
// DrawCommands.
type PDFEmitter struct {
	cfg config.Report
}

func NewPDFEmitter(cfg config.Report) *PDFEmitter {
	return &PDFEmitter{cfg: cfg}
}

func (e *PDFEmitter) newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: e.cfg.PageWidth, Ht: e.cfg.PageHeight},
	})
	// the builder owns pagination
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

// Measurer exposes the backend's text metrics for word wrapping, using the
// body font the wrapped descriptions are rendered in.
func (e *PDFEmitter) Measurer() TextMeasurer {
	pdf := e.newDoc()
	pdf.SetFont("Helvetica", "", 10)
	return pdfMeasurer{pdf: pdf}
}

type pdfMeasurer struct {
	pdf *gofpdf.Fpdf
}

func (m pdfMeasurer) Split(text string, width float64) ([]string, error) {
	raw := m.pdf.SplitLines([]byte(text), width)
	if m.pdf.Err() {
		return nil, m.pdf.Error()
	}
	lines := make([]string, len(raw))
	for i, ln := range raw {
		lines[i] = string(ln)
	}
	return lines, nil
}

// Emit replays the page commands into a PDF and returns the document bytes.
// Backend failure surfaces as EmitError with the cause attached.
func (e *PDFEmitter) Emit(pages []Page) ([]byte, error) {
	pdf := e.newDoc()
	pdf.SetTitle("Travel Itinerary", false)

	for _, p := range pages {
		pdf.AddPage()
		for _, cmd := range p.Commands {
			apply(pdf, cmd)
		}
	}

	if pdf.Err() {
		return nil, domain.EmitError{Err: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.EmitError{Err: err}
	}
	return buf.Bytes(), nil
}

func apply(pdf *gofpdf.Fpdf, cmd Command) {
	switch cmd.Op {
	case OpText:
		style := ""
		if cmd.Style.Bold {
			style += "B"
		}
		if cmd.Style.Italic {
			style += "I"
		}
		pdf.SetFont("Helvetica", style, cmd.Style.Size)
		pdf.SetTextColor(cmd.Style.Color.R, cmd.Style.Color.G, cmd.Style.Color.B)

		x := cmd.X
		switch cmd.Style.Align {
		case "C":
			x -= pdf.GetStringWidth(cmd.Text) / 2
		case "R":
			x -= pdf.GetStringWidth(cmd.Text)
		}
		pdf.Text(x, cmd.Y, cmd.Text)

	case OpRect:
		pdf.SetFillColor(cmd.Color.R, cmd.Color.G, cmd.Color.B)
		pdf.Rect(cmd.X, cmd.Y, cmd.W, cmd.H, "F")

	case OpLine:
		pdf.SetDrawColor(cmd.Color.R, cmd.Color.G, cmd.Color.B)
		pdf.Line(cmd.X, cmd.Y, cmd.X2, cmd.Y2)

	case OpCircle:
		pdf.SetFillColor(cmd.Color.R, cmd.Color.G, cmd.Color.B)
		pdf.Circle(cmd.X, cmd.Y, cmd.R, "F")
	}
}

// Filename derives the artifact name from the customer and destination with
// whitespace collapsed to underscores.
func Filename(customerName, destination string) string {
	return fmt.Sprintf("%s_%s_Itinerary.pdf",
		utils.FilenamePart(customerName), utils.FilenamePart(destination))
}
