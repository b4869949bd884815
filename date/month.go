package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// MonthFormat is the format used to represent calendar months as strings.
const MonthFormat = "2006-01"

// Month represents a calendar month, the natural granularity of a budget.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	// Normalize through time.Date so that month 13 becomes January next year.
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// ThisMonth returns the current calendar month.
func ThisMonth() Month {
	y, m, _ := time.Now().Date()
	return NewMonth(y, m)
}

// MonthOf returns the calendar month containing the given date.
func MonthOf(d Date) Month { return NewMonth(d.Year(), d.Month()) }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// Next returns the following calendar month.
func (m Month) Next() Month { return NewMonth(m.y, m.m+1) }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// Contains reports whether the given date falls within the month.
func (m Month) Contains(d Date) bool {
	return d.Year() == m.y && d.Month() == m.m
}

// IsZero reports whether the month is the zero value.
func (m Month) IsZero() bool { return m == Month{} }

// String formats the month in its standard "YYYY-MM" form.
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// ParseMonth parses a Month from a "YYYY-MM" string.
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// UnmarshalJSON decodes a month from its "YYYY-MM" json string.
func (j *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	m, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*j = m
	return nil
}

func (j Month) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
