package model

import (
	"fmt"
	"time"
)

// dateFormat is the wire format for calendar dates.
const dateFormat = "2006-01-02"

// Date is a calendar date with no time-of-day component. The zero value
// means no date was observed.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String renders the date as "2006-01-02", or "" for the zero value.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateFormat)
}

// MarshalJSON encodes the date as "2006-01-02", or null when absent.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateFormat) + `"`), nil
}

// UnmarshalJSON accepts "2006-01-02", "" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(`"`+dateFormat+`"`, s)
	if err != nil {
		return fmt.Errorf("parsing date %s: %w", s, err)
	}
	*d = Date{t}
	return nil
}
