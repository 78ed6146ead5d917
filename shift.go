package tillbook

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/tillbook/date"
)

// ShiftInput holds the figures counted at the end of a shift.
type ShiftInput struct {
	Date        date.Date
	Shift       string
	Employee    string
	OpeningCash Money
	Sales       Money
	Payments    Money
	ActualCash  Money
}

// ShiftReport is the end-of-shift cash reconciliation.
type ShiftReport struct {
	ShiftInput
	ExpectedCash Money
	Variance     Money
}

// IsZero reports whether no report has been generated yet.
func (r ShiftReport) IsZero() bool { return r.Date.IsZero() && r.Shift == "" && r.Employee == "" }

// Reconcile computes the expected cash, openingCash + sales − payments, and
// the variance, expected − actual.
func Reconcile(in ShiftInput) (ShiftReport, error) {
	for _, f := range []struct {
		name string
		v    Money
	}{
		{"openingCash", in.OpeningCash},
		{"sales", in.Sales},
		{"payments", in.Payments},
		{"actualCash", in.ActualCash},
	} {
		if f.v.IsNegative() {
			return ShiftReport{}, fmt.Errorf("cannot reconcile shift: %s %v: %w", f.name, f.v, ErrNegative)
		}
	}
	expected := in.OpeningCash.Add(in.Sales).Sub(in.Payments)
	return ShiftReport{
		ShiftInput:   in,
		ExpectedCash: expected,
		Variance:     expected.Sub(in.ActualCash),
	}, nil
}

func (r ShiftReport) MarshalJSON() ([]byte, error) {
	var w jsonRecord
	w.Field("date", r.Date)
	w.Field("shift", r.Shift)
	w.Field("employee", r.Employee)
	w.Field("openingCash", r.OpeningCash)
	w.Field("sales", r.Sales)
	w.Field("payments", r.Payments)
	w.Field("actualCash", r.ActualCash)
	w.Field("expectedCash", r.ExpectedCash)
	w.Field("variance", r.Variance)
	return w.MarshalJSON()
}

func (r *ShiftReport) UnmarshalJSON(data []byte) error {
	var aux struct {
		Date         date.Date `json:"date"`
		Shift        string    `json:"shift"`
		Employee     string    `json:"employee"`
		OpeningCash  Money     `json:"openingCash"`
		Sales        Money     `json:"sales"`
		Payments     Money     `json:"payments"`
		ActualCash   Money     `json:"actualCash"`
		ExpectedCash Money     `json:"expectedCash"`
		Variance     Money     `json:"variance"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = ShiftReport{
		ShiftInput: ShiftInput{
			Date:        aux.Date,
			Shift:       aux.Shift,
			Employee:    aux.Employee,
			OpeningCash: aux.OpeningCash,
			Sales:       aux.Sales,
			Payments:    aux.Payments,
			ActualCash:  aux.ActualCash,
		},
		ExpectedCash: aux.ExpectedCash,
		Variance:     aux.Variance,
	}
	return nil
}

// Equal reports whether both reports hold the same values.
func (r ShiftReport) Equal(o ShiftReport) bool {
	return r.Date == o.Date && r.Shift == o.Shift && r.Employee == o.Employee &&
		r.OpeningCash.Equal(o.OpeningCash) && r.Sales.Equal(o.Sales) &&
		r.Payments.Equal(o.Payments) && r.ActualCash.Equal(o.ActualCash) &&
		r.ExpectedCash.Equal(o.ExpectedCash) && r.Variance.Equal(o.Variance)
}
