package employee

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var regexDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a calendar date without a time of day or zone. It is comparable with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate accepts only the ISO-8601 YYYY-MM-DD form and rejects days that do not exist.
func ParseDate(s string) (Date, error) {
	if !regexDate.MatchString(s) {
		return Date{}, fmt.Errorf("date %q is not in YYYY-MM-DD form", s)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("time.Parse: %w", err)
	}

	return DateOf(t), nil
}

// DateOf takes the date part of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsValid reports whether d names a real day in years 0000-9999.
func (d Date) IsValid() bool {
	if d.Year < 0 || d.Year > 9999 {
		return false
	}

	return DateOf(d.Time()) == d
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
