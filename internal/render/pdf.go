package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/dmitrijs2005/creami/internal/common"
	"github.com/dmitrijs2005/creami/internal/export"
	"github.com/dmitrijs2005/creami/internal/models"
)

// Layout of the downloadable list, in millimetres on A4 portrait. Text is
// drawn at absolute positions without wrapping, hence the fixed widths and
// the truncation budgets.
const (
	pdfFont        = "Helvetica"
	pageCenter     = 105.0
	rightEdge      = 200.0
	leftEdge       = 10.0
	tableTop       = 55.0
	rowStep        = 6.0
	pageBottom     = 270.0
	continuedTop   = 20.0
	footerY        = 290.0
	descriptionMax = 25
	noteMax        = 15
)

var (
	pdfHeaders   = []string{"Cod. Art.", "Descrizione", "Categoria", "U.M.", "Prezzo €", "Note"}
	pdfColWidths = []float64{25, 60, 35, 20, 25, 35}
)

// PDFFileName names the downloadable file of a scope.
func PDFFileName(scope models.Scope) string {
	return export.FileStem(scope) + ".pdf"
}

// PDF writes doc as a paginated A4 list. Every page carries a page count
// and the generation date. The print configuration does not apply.
func PDF(w io.Writer, doc Document) error {
	pdf := buildPDF(doc)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func buildPDF(doc Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(doc.Generated)
	pdf.SetTitle(export.Title(doc.Scope), true)
	pdf.SetCreator(doc.Company, true)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	generated := doc.Generated.Format(common.DateLayout)

	pdf.SetFooterFunc(func() {
		pdf.SetFont(pdfFont, "", 8)
		centered(pdf, footerY, fmt.Sprintf("Pagina %d di {nb}", pdf.PageNo()))
		label := "Generato il: " + generated
		pdf.Text(rightEdge-pdf.GetStringWidth(label), footerY, label)
	})

	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 20)
	centered(pdf, 20, tr(doc.Company))
	pdf.SetFont(pdfFont, "", 16)
	centered(pdf, 30, "LISTINO PREZZI")
	pdf.SetFont(pdfFont, "", 12)
	centered(pdf, 40, tr(export.Title(doc.Scope)))

	y := tableTop
	pdf.SetFont(pdfFont, "B", 10)
	drawRow(pdf, tr, y, pdfHeaders)
	pdf.Line(leftEdge, y+2, rightEdge, y+2)
	y += 8

	pdf.SetFont(pdfFont, "", 10)
	for _, a := range doc.Articles {
		if y > pageBottom {
			pdf.AddPage()
			pdf.SetFont(pdfFont, "", 10)
			y = continuedTop
		}
		drawRow(pdf, tr, y, []string{
			a.Code,
			truncate(a.Description, descriptionMax),
			string(a.Category),
			string(a.Unit),
			"€ " + a.PriceText(),
			truncate(a.Note, noteMax),
		})
		y += rowStep
	}

	return pdf
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, y float64, cells []string) {
	x := leftEdge
	for i, c := range cells {
		pdf.Text(x, y, tr(c))
		x += pdfColWidths[i]
	}
}

func centered(pdf *fpdf.Fpdf, y float64, s string) {
	pdf.Text(pageCenter-pdf.GetStringWidth(s)/2, y, s)
}

// truncate cuts s to max runes and marks the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
