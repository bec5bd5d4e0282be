package models

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order when decoding a date from a request body.
// Clients send anything from a bare day to a full RFC3339 timestamp.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Date is a time.Time that accepts the date formats the API has always
// accepted in JSON bodies.
type Date struct {
	time.Time
}

// ParseDate parses s using the accepted request layouts, in local time for
// the layouts that carry no zone.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, s); err == nil {
				return Date{t}, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC3339", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	// An empty string is not an absent date; it must fail like any other
	// unparseable value.
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}
