package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/creami/internal/models"
)

func article(id string, cat models.Category, code, desc, price, date string) models.Article {
	return models.Article{
		ID:           id,
		Category:     cat,
		Code:         code,
		Description:  desc,
		Unit:         models.UnitMeter,
		Price:        decimal.RequireFromString(price),
		InsertedDate: date,
	}
}

func sample() []models.Article {
	return []models.Article{
		article("1", models.CategoryTermoidraulica, "A1", "Tubo rame", "12.5", "01/01/2024"),
		article("2", models.CategoryEdilizia, "B7", "Cemento", "7", "15/02/2024"),
		article("3", models.CategoryTermoidraulica, "A2", "Raccordo", "3.10", "10/12/2023"),
	}
}

func ids(list []models.Article) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	list := sample()

	tests := []struct {
		name  string
		scope models.Scope
		want  []string
	}{
		{"all", models.AllScope(), []string{"1", "2", "3"}},
		{"category keeps order", models.CategoryScope(models.CategoryTermoidraulica), []string{"1", "3"}},
		{"category without match", models.CategoryScope(models.CategoryAltro), []string{}},
		{"category without name", models.Scope{Kind: models.ScopeCategory}, []string{"1", "2", "3"}},
		{"single", models.SingleScope("2"), []string{"2"}},
		{"single unknown id", models.SingleScope("nope"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(list, tt.scope)))
		})
	}
}

func TestFilter_AllReturnsInput(t *testing.T) {
	list := sample()
	got := Filter(list, models.AllScope())
	require.Len(t, got, len(list))
	assert.Same(t, &list[0], &got[0])
}

func TestTitleAndFileStem(t *testing.T) {
	assert.Equal(t, "Listino Completo", Title(models.AllScope()))
	assert.Equal(t, "Categoria: EDILIZIA", Title(models.CategoryScope(models.CategoryEdilizia)))
	assert.Equal(t, "Articolo Singolo", Title(models.SingleScope("x")))
	assert.Equal(t, "Listino Completo", Title(models.Scope{Kind: models.ScopeSingle}))

	assert.Equal(t, "listino-completo", FileStem(models.AllScope()))
	assert.Equal(t, "categoria-ALTRO", FileStem(models.CategoryScope(models.CategoryAltro)))
	assert.Equal(t, "articolo-singolo", FileStem(models.SingleScope("x")))
}

func TestWriteCSV(t *testing.T) {
	list := sample()[:1]
	list = append(list, article("9", models.CategoryAltro, "Q", `Vite "M6"`, "0", "02/03/2024"))
	list[1].Note = "a, b"

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, list))

	want := strings.Join([]string{
		"Categoria,Codice Articolo,Descrizione,Unità di Misura,Prezzo (€),Note,Data Inserimento",
		`"TERMOIDRAULICA","A1","Tubo rame","MT","12.50","","01/01/2024"`,
		`"ALTRO","Q","Vite ""M6""","MT","0.00","a, b","02/03/2024"`,
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, strings.Join(columns, ","), buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sample()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "B7", rows[2][1])
	assert.Equal(t, "Cemento", rows[2][2])

	raw, err := f.GetCellValue(SheetName, "E2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "12.5", raw)
}

func TestStats(t *testing.T) {
	s := Stats(sample())

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, []models.Category{models.CategoryTermoidraulica, models.CategoryEdilizia}, s.Categories)
	assert.Equal(t, time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC), s.Earliest)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), s.Latest)
	assert.Equal(t, "7.53", s.AveragePrice.StringFixed(2))
}

func TestStats_Empty(t *testing.T) {
	s := Stats(nil)
	assert.Zero(t, s.Total)
	assert.Empty(t, s.Categories)
	assert.True(t, s.Earliest.IsZero())
	assert.True(t, s.AveragePrice.IsZero())
}
