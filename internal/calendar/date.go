package calendar

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar day with no time-of-day or zone. Differences between
// two dates are whole days regardless of daylight-saving transitions.
type Date struct {
	civil.Date
}

func New(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

// Of returns the calendar day of t in t's location.
func Of(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

func Today() Date {
	return Of(time.Now())
}

// Parse parses an ISO 8601 date (YYYY-MM-DD).
func Parse(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{d}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{d.Date.AddDays(n)}
}

// AddMonths moves d by n calendar months, normalizing overflowing days the
// same way time.AddDate does (Jan 31 + 1 month = Mar 2 or 3).
func (d Date) AddMonths(n int) Date {
	return Of(d.Date.In(time.UTC).AddDate(0, n, 0))
}

// DaysSince returns the signed number of days from other to d.
func (d Date) DaysSince(other Date) int {
	return d.Date.DaysSince(other.Date)
}

func (d Date) Before(other Date) bool {
	return d.Date.Before(other.Date)
}

func (d Date) After(other Date) bool {
	return d.Date.After(other.Date)
}

func (d Date) Equal(other Date) bool {
	return d.Date == other.Date
}

func (d Date) IsZero() bool {
	return d.Date == civil.Date{}
}

// Value implements driver.Valuer. Dates are stored as YYYY-MM-DD text so
// they compare lexically on SQLite and cast cleanly on PostgreSQL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{civil.DateOf(v)}
		return nil
	case string:
		return d.parseStored(v)
	case []byte:
		return d.parseStored(string(v))
	default:
		return fmt.Errorf("cannot scan %T into calendar.Date", value)
	}
}

func (d *Date) parseStored(s string) error {
	if len(s) > 10 {
		// Drivers may hand back a full timestamp for DATE columns
		s = s[:10]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON writes YYYY-MM-DD, or null for the zero date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("calendar.Date: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType tells gorm which column type to use for Date fields.
func (Date) GormDataType() string {
	return "date"
}
