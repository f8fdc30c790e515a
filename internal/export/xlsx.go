package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/creami/internal/models"
)

const (
	SheetName      = "Listino"
	XLSXFileName   = "cremai-listino.xlsx"
	priceColumn    = 5
	twoDecimalsFmt = 2 // built-in "0.00"
)

var columnWidths = []float64{18, 16, 40, 14, 12, 24, 16}

// WriteXLSX writes the CSV columns to a single-sheet workbook. Prices are
// stored as numbers so the sheet can sum them.
func WriteXLSX(w io.Writer, articles []models.Article) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, a := range articles {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			string(a.Category),
			a.Code,
			a.Description,
			string(a.Unit),
			a.Price.InexactFloat64(),
			a.Note,
			a.InsertedDate,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	price, err := f.NewStyle(&excelize.Style{NumFmt: twoDecimalsFmt})
	if err != nil {
		return fmt.Errorf("price style: %w", err)
	}
	col, err := excelize.ColumnNumberToName(priceColumn)
	if err != nil {
		return err
	}
	if err := f.SetColStyle(SheetName, col, price); err != nil {
		return fmt.Errorf("price style: %w", err)
	}

	for i, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
