package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the date format the API expects in filter values.
const DateLayout = "2006-01-02"

// dateLayouts are tried in order; a month or year alone means its first day.
var dateLayouts = []string{DateLayout, "2006-01", "2006"}

// Date is a calendar date used by date filters.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate accepts YYYY-MM-DD, YYYY-MM or YYYY.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date format: %s", s)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}
