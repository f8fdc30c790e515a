package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/dmitrijs2005/creami/internal/common"
	"github.com/dmitrijs2005/creami/internal/models"
	"github.com/dmitrijs2005/creami/internal/printcfg"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; color: #000; font-size: 12px; line-height: 1.4; }
.header { text-align: center; margin-bottom: 20px; border-bottom: 1px solid #ccc; padding-bottom: 10px; }
.company-name { font-size: 20px; font-weight: bold; }
.title { font-size: 16px; margin-bottom: 10px; }
.subtitle { font-size: 12px; color: #666; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f5f5f5; font-weight: bold; }
.price { text-align: right; font-weight: bold; }
.footer { margin-top: 30px; text-align: center; font-size: 12px; color: #666; border-top: 1px solid #ddd; padding-top: 10px; }
{{.Styles}}
</style>
</head>
<body>
{{- if .ShowHeaders}}
<div class="header">
<div class="company-name">{{.Company}}</div>
<div class="title">{{.Title}}</div>
{{- if .Date}}
<div class="subtitle">Generato il: {{.Date}}</div>
{{- end}}
</div>
{{- end}}
<table>
<thead>
<tr><th>Cod. Art.</th><th>Descrizione</th><th>Categoria</th><th>U.M.</th><th>Prezzo</th><th>Note</th></tr>
</thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Code}}</td><td>{{.Description}}</td><td>{{.Category}}</td><td>{{.Unit}}</td><td class="price">€ {{.PriceText}}</td><td>{{.Note}}</td></tr>
{{- end}}
</tbody>
</table>
{{- if .ShowFooters}}
<div class="footer">
<p>{{.Company}} - {{.System}}</p>
<p>Totale articoli: {{len .Rows}}</p>
</div>
{{- end}}
<script>
window.onload = function() {
  window.print();
  window.onafterprint = function() { window.close(); };
};
</script>
</body>
</html>
`))

type pageData struct {
	Title       string
	Company     string
	System      string
	Date        string
	Styles      template.CSS
	ShowHeaders bool
	ShowFooters bool
	Rows        []models.Article
}

// HTML writes doc as a print-ready page styled by its PrintConfiguration.
func HTML(w io.Writer, doc Document) error {
	data := pageData{
		Title:       doc.PrintTitle(),
		Company:     doc.Company,
		System:      systemName,
		Styles:      template.CSS(printcfg.PageStyles(doc.Config)),
		ShowHeaders: doc.Config.ShowHeaders,
		ShowFooters: doc.Config.ShowFooters,
		Rows:        doc.Articles,
	}
	if doc.Config.IncludeDate {
		data.Date = doc.Generated.Format(common.DateLayout)
	}

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("render print page: %w", err)
	}
	return nil
}
