package date

import (
	"testing"
	"time"
)

func TestPeriod_Range(t *testing.T) {
	testCases := []struct {
		name   string
		period Period
		in     Date
		want   Range
	}{
		{"day", Daily, New(2025, time.September, 8), Range{New(2025, time.September, 8), New(2025, time.September, 8)}},
		{"a Wednesday", Weekly, New(2025, time.September, 10), Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"a Sunday", Weekly, New(2025, time.September, 14), Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"leap february", Monthly, New(2024, time.February, 15), Range{New(2024, time.February, 1), New(2024, time.February, 29)}},
		{"Q2", Quarterly, New(2025, time.May, 20), Range{New(2025, time.April, 1), New(2025, time.June, 30)}},
		{"Q4", Quarterly, New(2025, time.December, 31), Range{New(2025, time.October, 1), New(2025, time.December, 31)}},
		{"year", Yearly, New(2025, time.September, 8), Range{New(2025, time.January, 1), New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Range(tc.in); got != tc.want {
				t.Errorf("%v.Range(%v) = %v, want %v", tc.period, tc.in, got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := Between(New(2025, 1, 10), New(2025, 1, 20))
	for _, d := range []Date{New(2025, 1, 10), New(2025, 1, 15), New(2025, 1, 20)} {
		if !r.Contains(d) {
			t.Errorf("%v should contain %v", r, d)
		}
	}
	for _, d := range []Date{New(2025, 1, 9), New(2025, 1, 21)} {
		if r.Contains(d) {
			t.Errorf("%v should not contain %v", r, d)
		}
	}
}

func TestRange_String(t *testing.T) {
	testCases := []struct {
		in   Range
		want string
	}{
		{NewRange(New(2025, time.September, 8), Daily), "2025-09-08"},
		{NewRange(New(2025, time.September, 8), Weekly), "2025-W37"},
		{NewRange(New(2024, time.December, 31), Weekly), "2025-W01"},
		{NewRange(New(2025, time.September, 1), Monthly), "2025-09"},
		{NewRange(New(2025, time.July, 1), Quarterly), "2025-Q3"},
		{NewRange(New(2025, time.January, 1), Yearly), "2025"},
		{Between(New(2025, time.September, 2), New(2025, time.September, 10)), "2025-09-02..2025-09-10"},
		{Between(Date{}, New(2025, time.September, 10)), "..2025-09-10"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"week", Weekly, false},
		{"Month", Monthly, false},
		{"quarterly", Quarterly, false},
		{"year", Yearly, false},
		{"fortnight", Daily, true},
	}
	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
