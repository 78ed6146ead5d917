// Package date provides a day-granularity Date used to stamp ledger
// transactions, stock closings and shift reports.
package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func (d Date) ISOWeek() (year, week int) { return d.time().ISOWeek() }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date, see [time.Time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// String format the date in its standard format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
// It is suitable for slices.SortFunc.
func Compare(d, x Date) int { return d.time().Compare(x.time()) }

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		offset := int(d.Weekday() - time.Monday)
		for offset < 0 {
			offset += 7
		}
		return d.Add(-offset)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		quarter := (d.m - 1) / 3
		return New(d.y, quarter*3+1, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		endMonth := (d.m-1)/3*3 + 3
		return New(d.y, endMonth+1, 0) // day 0 is the last day of the previous month
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		panic("unknown period")
	}
}

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)

// Parse parses a Date from a string.
//
// It is lenient and accepts "2025-7-1" as well as relative dates to today:
// "0d" is today, "-1d" yesterday, "+2w" two weeks from now, "-1m" a month
// ago and "-1y" a year ago.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "0d" {
		return Today(), nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		today := Today()
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return New(today.y, today.m+time.Month(num), today.d), nil
		case "y":
			return New(today.y+num, today.m, today.d), nil
		}
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// spreadsheetEpoch is the day spreadsheet serial dates count from.
var spreadsheetEpoch = New(1899, time.December, 30)

// FromSerial converts a spreadsheet serial day number into a Date.
func FromSerial(serial int) Date { return spreadsheetEpoch.Add(serial) }

// Serial day numbers outside this range are rejected: 10000 is 1927-05-18 and
// 2958465 is 9999-12-31. It keeps bare years like "2025" from being read as
// serials.
const (
	minSerial = 10000
	maxSerial = 2958465
)

// cellLayouts are the textual layouts with a month name that spreadsheet
// applications commonly use to display dates.
var cellLayouts = []string{
	"2 Jan 2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"2006-01-02T15:04:05Z07:00",
}

// numericCellRE matches all-numeric day and month layouts like 05/01/2025.
var numericCellRE = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{2}|\d{4})$`)

// ParseCell parses a date as found in a spreadsheet cell: a regular date, a
// serial day number, or one of the common display layouts.
//
// All-numeric layouts are read day-first or month-first, whichever is the
// only valid reading. When both readings are valid and differ, like
// 05/01/2025, the date is ambiguous and rejected.
func ParseCell(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if d, err := Parse(str); err == nil {
		return d, nil
	}
	if f, err := strconv.ParseFloat(str, 64); err == nil {
		if f < minSerial || f > maxSerial {
			return Date{}, fmt.Errorf("invalid date %q: serial day out of range", str)
		}
		return FromSerial(int(f)), nil
	}
	if m := numericCellRE.FindStringSubmatch(str); m != nil {
		return parseNumericCell(str, m[1], m[2], m[3])
	}
	for _, layout := range cellLayouts {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", str)
}

func parseNumericCell(str, first, second, year string) (Date, error) {
	a, _ := strconv.Atoi(first)
	b, _ := strconv.Atoi(second)
	y, _ := strconv.Atoi(year)
	if len(year) == 2 { // same pivot as the "06" layout of package time
		y += 2000
		if y >= 2069 {
			y -= 100
		}
	}
	dayFirst, okDayFirst := validDate(y, b, a)
	monthFirst, okMonthFirst := validDate(y, a, b)
	switch {
	case okDayFirst && okMonthFirst && dayFirst != monthFirst:
		return Date{}, fmt.Errorf("ambiguous date %q: could be %s or %s", str, dayFirst, monthFirst)
	case okDayFirst:
		return dayFirst, nil
	case okMonthFirst:
		return monthFirst, nil
	}
	return Date{}, fmt.Errorf("invalid date %q", str)
}

// validDate returns the date and true if day exists in that month.
func validDate(year, month, day int) (Date, bool) {
	if month < 1 || month > 12 || day < 1 {
		return Date{}, false
	}
	d := New(year, time.Month(month), day)
	return d, d.Day() == day
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
