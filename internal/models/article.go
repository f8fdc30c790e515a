// Package models defines the price-list data types shared by storage,
// export and the CLI.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/creami/internal/common"
)

func init() {
	// Exports written by earlier versions carry prezzo as a bare JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category groups articles in the price list. The known values are listed in
// Categories; stored data may carry others and they are kept as-is.
type Category string

const (
	CategoryEdilizia       Category = "EDILIZIA"
	CategoryTermoidraulica Category = "TERMOIDRAULICA"
	CategoryAttrezzatura   Category = "ATTREZZATURA"
	CategoryAltro          Category = "ALTRO"
)

// Categories is the closed set offered by the capture form, in display order.
var Categories = []Category{CategoryEdilizia, CategoryTermoidraulica, CategoryAttrezzatura, CategoryAltro}

// Unit is the unit of measure of an article.
type Unit string

const (
	UnitPiece       Unit = "PZ"
	UnitSquareMeter Unit = "MQ"
	UnitCubicMeter  Unit = "MC"
	UnitKilogram    Unit = "KG"
	UnitMeter       Unit = "MT"
)

var Units = []Unit{UnitPiece, UnitSquareMeter, UnitCubicMeter, UnitKilogram, UnitMeter}

// Article is one priced line of the price list.
//
// JSON names follow the persisted and exported format, so files written by
// earlier versions import unchanged.
type Article struct {
	ID           string          `json:"id"`
	Category     Category        `json:"categoria"`
	Code         string          `json:"codArt"`
	Description  string          `json:"descrizione"`
	Unit         Unit            `json:"um"`
	Price        decimal.Decimal `json:"prezzo"`
	Note         string          `json:"note"`
	InsertedDate string          `json:"dataInserimento"`
}

// PriceText is the price with two decimals, as shown in every output.
func (a Article) PriceText() string {
	return a.Price.StringFixed(2)
}

// NewArticle validates in and stamps a fresh id and the insertion date.
func NewArticle(in ArticleInput, now time.Time) (Article, error) {
	if err := in.Validate(); err != nil {
		return Article{}, err
	}

	return Article{
		ID:           uuid.NewString(),
		Category:     Category(strings.TrimSpace(in.Category)),
		Code:         strings.TrimSpace(in.Code),
		Description:  strings.TrimSpace(in.Description),
		Unit:         Unit(strings.TrimSpace(in.Unit)),
		Price:        in.Price,
		Note:         strings.TrimSpace(in.Note),
		InsertedDate: now.Format(common.DateLayout),
	}, nil
}

// IsKnownCategory reports whether c is one of Categories.
func IsKnownCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func IsKnownUnit(u Unit) bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}
