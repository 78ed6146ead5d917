package date

import (
	"fmt"
	"time"
)

// Range is a span of days, both ends included.
type Range struct{ From, To Date }

// NewRange returns the range of the given period that contains d.
func NewRange(d Date, period Period) Range { return period.Range(d) }

// Between returns the range from 'from' to 'to'.
func Between(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether date falls within the range.
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Period reports the calendar period the range covers exactly, if any.
func (r Range) Period() (Period, bool) {
	switch {
	case r.From == r.To:
		return Daily, true
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		return Weekly, true
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	}
	return Daily, false
}

// String names the range after the calendar period it covers, like 2025-03,
// 2025-W37 or 2025-Q3, and renders it as from..to otherwise. An open start
// renders as ..to.
func (r Range) String() string {
	if r.From.IsZero() {
		return fmt.Sprintf("..%s", r.To)
	}
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s..%s", r.From, r.To)
	}
	switch p {
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (int(r.From.Month())-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		return r.From.String()
	}
}
