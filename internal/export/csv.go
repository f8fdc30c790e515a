package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/creami/internal/models"
)

// CSVFileName is the default name of the spreadsheet export.
const CSVFileName = "cremai-listino.csv"

var columns = []string{
	"Categoria",
	"Codice Articolo",
	"Descrizione",
	"Unità di Misura",
	"Prezzo (€)",
	"Note",
	"Data Inserimento",
}

func row(a models.Article) []string {
	return []string{
		string(a.Category),
		a.Code,
		a.Description,
		string(a.Unit),
		a.PriceText(),
		a.Note,
		a.InsertedDate,
	}
}

// WriteCSV writes the header line and one line per article. Every data
// field is quoted, lines are separated by "\n" with no trailing newline.
//
// encoding/csv only quotes fields that need it, and spreadsheet imports of
// earlier files rely on every field being quoted.
func WriteCSV(w io.Writer, articles []models.Article) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(columns, ","))

	for _, a := range articles {
		bw.WriteByte('\n')
		for i, f := range row(a) {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(quote(f))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
