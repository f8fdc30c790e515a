package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/creami/internal/common"
)

func validInput() ArticleInput {
	return ArticleInput{
		Category:    "EDILIZIA",
		Code:        " A1 ",
		Description: "Tubo",
		Unit:        "MT",
		Price:       decimal.RequireFromString("12.5"),
	}
}

func TestNewArticle_StampsIDAndDate(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	a, err := NewArticle(validInput(), now)
	require.NoError(t, err)

	_, err = uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "01/01/2024", a.InsertedDate)
	assert.Equal(t, "A1", a.Code)
	assert.Equal(t, CategoryEdilizia, a.Category)
	assert.Equal(t, "12.50", a.PriceText())
}

func TestNewArticle_IDsAreUnique(t *testing.T) {
	now := time.Now()
	a, err := NewArticle(validInput(), now)
	require.NoError(t, err)
	b, err := NewArticle(validInput(), now)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestArticleInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArticleInput)
		fields []string
	}{
		{name: "valid", mutate: func(*ArticleInput) {}},
		{name: "missing description", mutate: func(in *ArticleInput) { in.Description = "  " }, fields: []string{"description"}},
		{name: "unknown category", mutate: func(in *ArticleInput) { in.Category = "FOOD" }, fields: []string{"category"}},
		{name: "missing category", mutate: func(in *ArticleInput) { in.Category = "" }, fields: []string{"category"}},
		{name: "unknown unit", mutate: func(in *ArticleInput) { in.Unit = "LT" }, fields: []string{"unit"}},
		{name: "negative price", mutate: func(in *ArticleInput) { in.Price = decimal.NewFromInt(-1) }, fields: []string{"price"}},
		{name: "zero price is fine", mutate: func(in *ArticleInput) { in.Price = decimal.Zero }},
		{
			name: "several problems at once",
			mutate: func(in *ArticleInput) {
				in.Description = ""
				in.Unit = ""
			},
			fields: []string{"description", "unit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, common.ErrValidation)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			got := make([]string, 0, len(ve.Fields))
			for _, f := range ve.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestArticle_Check_AcceptsUnknownCategory(t *testing.T) {
	a := Article{ID: "1", Category: "FUTURE", Description: "x", Unit: "LT", Price: decimal.Zero}
	require.NoError(t, a.Check())
}

func TestArticle_Check_RejectsMissingFields(t *testing.T) {
	err := Article{Price: decimal.NewFromInt(-3)}.Check()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 5)
}

func TestArticle_JSONWireNames(t *testing.T) {
	a := Article{
		ID: "1", Category: "PZ", Code: "A1", Description: "Tubo", Unit: "MT",
		Price: decimal.RequireFromString("12.5"), Note: "", InsertedDate: "01/01/2024",
	}
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"1","categoria":"PZ","codArt":"A1","descrizione":"Tubo","um":"MT","prezzo":12.5,"note":"","dataInserimento":"01/01/2024"}`,
		string(b))

	var back Article
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Price.Equal(a.Price))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "12.5", want: "12.50"},
		{in: "12,5", want: "12.50"},
		{in: "€ 3", want: "3.00"},
		{in: "", want: "0.00"},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParsePrice(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.StringFixed(2))
		})
	}
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope(nil)
	require.NoError(t, err)
	assert.Equal(t, AllScope(), s)

	s, err = ParseScope([]string{"category", "edilizia"})
	require.NoError(t, err)
	assert.Equal(t, CategoryScope(CategoryEdilizia), s)

	s, err = ParseScope([]string{"single", "abc"})
	require.NoError(t, err)
	assert.Equal(t, SingleScope("abc"), s)

	_, err = ParseScope([]string{"category"})
	require.ErrorIs(t, err, common.ErrInvalidScope)

	_, err = ParseScope([]string{"everything"})
	require.ErrorIs(t, err, common.ErrInvalidScope)
}

func TestPaperSize_Dimensions(t *testing.T) {
	w, h := PaperA3.Dimensions()
	assert.Equal(t, 297.0, w)
	assert.Equal(t, 420.0, h)

	w, h = PaperSize("B5").Dimensions()
	assert.Equal(t, 210.0, w)
	assert.Equal(t, 297.0, h)
}
