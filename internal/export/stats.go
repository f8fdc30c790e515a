package export

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/creami/internal/common"
	"github.com/dmitrijs2005/creami/internal/models"
)

// Summary describes a list of articles. Earliest and Latest are zero when no
// insertion date parses.
type Summary struct {
	Total        int
	Categories   []models.Category
	Earliest     time.Time
	Latest       time.Time
	AveragePrice decimal.Decimal
}

// Stats summarises articles. Categories are listed in first-seen order.
func Stats(articles []models.Article) Summary {
	s := Summary{Total: len(articles), AveragePrice: decimal.Zero}
	if len(articles) == 0 {
		return s
	}

	seen := make(map[models.Category]struct{})
	sum := decimal.Zero
	for _, a := range articles {
		if _, ok := seen[a.Category]; !ok {
			seen[a.Category] = struct{}{}
			s.Categories = append(s.Categories, a.Category)
		}
		sum = sum.Add(a.Price)

		d, err := time.Parse(common.DateLayout, a.InsertedDate)
		if err != nil {
			continue
		}
		if s.Earliest.IsZero() || d.Before(s.Earliest) {
			s.Earliest = d
		}
		if s.Latest.IsZero() || d.After(s.Latest) {
			s.Latest = d
		}
	}

	s.AveragePrice = sum.Div(decimal.NewFromInt(int64(len(articles)))).Round(2)
	return s
}
