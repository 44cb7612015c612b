package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDate is a calendar date without a time component, exchanged as
// "YYYY-MM-DD" in JSON and stored as a date column.
type LocalDate struct {
	time.Time
}

const layout = "2006-01-02"

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{t}, nil
}

func ToTimePtr(ld *LocalDate) *time.Time {
	if ld == nil {
		return nil
	}
	t := ld.Time
	return &t
}

func (ld *LocalDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return err
	}
	ld.Time = t
	return nil
}

func (ld LocalDate) MarshalJSON() ([]byte, error) {
	if ld.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ld.Format(layout) + `"`), nil
}

func (ld LocalDate) String() string {
	if ld.IsZero() {
		return ""
	}
	return ld.Format(layout)
}

func (ld LocalDate) Equal(other LocalDate) bool {
	return ld.Time.Equal(other.Time)
}

func (ld LocalDate) Value() (driver.Value, error) {
	if ld.IsZero() {
		return nil, nil
	}
	return ld.Time, nil
}

func (ld *LocalDate) Scan(value interface{}) error {
	if value == nil {
		ld.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ld.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		parsed, err := time.Parse(layout, string(v))
		if err != nil {
			return err
		}
		ld.Time = parsed
		return nil
	case string:
		parsed, err := time.Parse(layout, v)
		if err != nil {
			return err
		}
		ld.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into LocalDate", value)
	}
}
