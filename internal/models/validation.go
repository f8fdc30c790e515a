package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/creami/internal/common"
)

// FieldError is a single rejected field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem found in one value.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ArticleInput is what the capture form collects before an Article exists.
type ArticleInput struct {
	Category    string
	Code        string
	Description string
	Unit        string
	Price       decimal.Decimal
	Note        string
}

// Validate applies the capture-form schema: category and unit from the
// closed sets, non-empty description, non-negative price.
func (in ArticleInput) Validate() error {
	v := &ValidationError{}

	if c := strings.TrimSpace(in.Category); c == "" {
		v.add("category", "category is required")
	} else if !IsKnownCategory(Category(c)) {
		v.add("category", fmt.Sprintf("unknown category %q", c))
	}

	if strings.TrimSpace(in.Description) == "" {
		v.add("description", "description is required")
	}

	if u := strings.TrimSpace(in.Unit); u == "" {
		v.add("unit", "unit of measure is required")
	} else if !IsKnownUnit(Unit(u)) {
		v.add("unit", fmt.Sprintf("unknown unit of measure %q", u))
	}

	if in.Price.IsNegative() {
		v.add("price", "price must be greater than or equal to 0")
	}

	return v.orNil()
}

// Check validates an article that arrived from outside the form, e.g. an
// import file. Category and unit only need to be present, so values written
// by other versions survive.
func (a Article) Check() error {
	v := &ValidationError{}

	if strings.TrimSpace(a.ID) == "" {
		v.add("id", "id is required")
	}
	if strings.TrimSpace(string(a.Category)) == "" {
		v.add("categoria", "category is required")
	}
	if strings.TrimSpace(a.Description) == "" {
		v.add("descrizione", "description is required")
	}
	if strings.TrimSpace(string(a.Unit)) == "" {
		v.add("um", "unit of measure is required")
	}
	if a.Price.IsNegative() {
		v.add("prezzo", "price must be greater than or equal to 0")
	}

	return v.orNil()
}

// ParsePrice reads a user-typed price. Both "12.50" and "12,50" are accepted.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "€"))
	if s == "" {
		return decimal.Zero, nil
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Fields: []FieldError{{Field: "price", Message: "price must be a number"}}}
	}
	return d, nil
}
