package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

// Date is a local calendar date without time-of-day semantics.
// The zero value is not a valid date; use IsZero to detect it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalising out-of-range days the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf extracts the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight UTC of the date, suitable for DATE columns.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// MonthKey returns the calendar month the date falls in.
func (d Date) MonthKey() MonthKey {
	return MonthKey{Year: d.Year, Month: d.Month}
}

// AddMonths moves the date by n whole calendar months. When the target month
// is shorter than the current day, the day is clamped to the month's last day
// so the result never spills into the following month.
func (d Date) AddMonths(n int) Date {
	target := d.MonthKey().AddMonths(n)
	day := d.Day
	if last := target.DaysIn(); day > last {
		day = last
	}
	return Date{Year: target.Year, Month: target.Month, Day: day}
}

func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// ParseMonthKey parses a YYYY-MM string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthKey{Year: t.Year(), Month: t.Month()}, nil
}

// AddMonths moves the key by n months (n may be negative).
func (k MonthKey) AddMonths(n int) MonthKey {
	idx := k.Year*12 + int(k.Month) - 1 + n
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return MonthKey{Year: year, Month: time.Month(month + 1)}
}

func (k MonthKey) Next() MonthKey { return k.AddMonths(1) }

func (k MonthKey) Compare(o MonthKey) int {
	if k.Year != o.Year {
		return cmpInt(k.Year, o.Year)
	}
	return cmpInt(int(k.Month), int(o.Month))
}

func (k MonthKey) After(o MonthKey) bool { return k.Compare(o) > 0 }

// DaysIn returns the number of days in the month.
func (k MonthKey) DaysIn() int {
	return time.Date(k.Year, k.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// On returns the date for the given day of this month, clamped to the month length.
func (k MonthKey) On(day int) Date {
	if last := k.DaysIn(); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return Date{Year: k.Year, Month: k.Month, Day: day}
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
