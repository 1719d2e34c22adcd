package pass

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryService Category = "service"
	CategoryBenefit Category = "benefit"
)

func (c Category) IsValid() bool {
	return c == CategoryService || c == CategoryBenefit
}

// ContentItem is one redeemable line item within a season-pass definition:
// either a specific salon service or a non-service benefit.
type ContentItem struct {
	ID         uuid.UUID
	Category   Category
	ServiceID  *uuid.UUID // set when Category is "service"
	Total      int
	MonthlyCap *int // nil means uncapped
}

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var ErrInvalidMonth = errors.New("month must be formatted YYYY-MM")

// Month identifies a calendar month for per-month usage caps.
type Month string

func NewMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return "", ErrInvalidMonth
	}
	return Month(s), nil
}

func (m Month) String() string {
	return string(m)
}
