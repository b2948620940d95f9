package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly is a calendar date with no meaningful time component. The
// underlying instant is anchored to 12:00 UTC so that timezone conversions
// can never shift the value across a day boundary.
type DateOnly struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{Time: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

// Normalize re-anchors an arbitrary instant to noon UTC on its calendar day.
func Normalize(t time.Time) DateOnly {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a YYYY-MM-DD string. Anything unparseable yields the zero
// DateOnly, which the rest of the system treats as "no valid date".
func ParseDate(s string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return Normalize(t), nil
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

// Weekend reports whether the date falls on a Saturday or Sunday.
func (d DateOnly) Weekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = DateOnly{}
		return nil
	}
	t, err := time.Parse(`"`+dateLayout+`"`, s)
	if err != nil {
		return err
	}
	*d = Normalize(t)
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *DateOnly) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = DateOnly{}
	case time.Time:
		*d = Normalize(v)
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", src)
	}
	return nil
}

func (DateOnly) GormDataType() string {
	return "date"
}
