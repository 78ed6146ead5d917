package tillbook

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/etnz/tillbook/date"
	"github.com/go-playground/validator/v10"
)

// FormError reports a missing or invalid form field.
type FormError struct {
	Field  string
	Reason string
	// Err is the domain error behind the failure, if any.
	Err error
}

func (e *FormError) Error() string { return fmt.Sprintf("%s %s", e.Field, e.Reason) }

func (e *FormError) Unwrap() error { return e.Err }

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// formValidator returns the shared validator. Field names in errors come from
// the `form` struct tag.
func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("form"); name != "" {
				return name
			}
			return fld.Name
		})
	})
	return validate
}

// validateForm trims every string field of form then runs the validator on
// it. The first failure is returned as a *FormError.
func validateForm(form any) error {
	v := reflect.ValueOf(form).Elem()
	for i := 0; i < v.NumField(); i++ {
		if f := v.Field(i); f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
	err := formValidator().Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &FormError{Field: fe.Field(), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "numeric":
		return fmt.Sprintf("must be a number, got %q", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func parseMoneyField(field, s string) (Money, error) {
	if s == "" {
		return Money{}, nil
	}
	m, err := ParseMoney(s)
	if err != nil {
		return Money{}, &FormError{Field: field, Reason: fmt.Sprintf("must be an amount, got %q", s)}
	}
	if m.IsNegative() {
		return Money{}, &FormError{Field: field, Reason: "must not be negative", Err: ErrNegative}
	}
	return m, nil
}

func parseQuantityField(field, s string) (Quantity, error) {
	if s == "" {
		return Quantity{}, nil
	}
	q, err := ParseQuantity(s)
	if err != nil {
		return Quantity{}, &FormError{Field: field, Reason: fmt.Sprintf("must be a quantity, got %q", s)}
	}
	if q.IsNegative() {
		return Quantity{}, &FormError{Field: field, Reason: "must not be negative", Err: ErrNegative}
	}
	return q, nil
}

func parseDateField(field, s string, fallback date.Date) (date.Date, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := date.ParseCell(s)
	if err != nil {
		return date.Date{}, &FormError{Field: field, Reason: fmt.Sprintf("must be a date, got %q", s)}
	}
	return d, nil
}

// AccountForm is the raw input of a new account.
type AccountForm struct {
	Name string `form:"name" validate:"required"`
	Type string `form:"type" validate:"required"`
}

// Parse validates the form.
func (f AccountForm) Parse() (Account, error) {
	if err := validateForm(&f); err != nil {
		return Account{}, err
	}
	typ, err := ParseAccountType(f.Type)
	if err != nil {
		return Account{}, &FormError{Field: "type", Reason: fmt.Sprintf("must be one of %v, got %q", AccountTypes, f.Type), Err: ErrUnknownType}
	}
	return Account{Name: f.Name, Type: typ}, nil
}

// TransactionForm is the raw input of a transaction, typed by hand or read
// from a spreadsheet row.
type TransactionForm struct {
	Date          string `form:"date" validate:"required"`
	Description   string `form:"description" validate:"required"`
	DebitAccount  string `form:"debit" validate:"required"`
	CreditAccount string `form:"credit" validate:"required"`
	Amount        string `form:"amount" validate:"required,numeric"`
}

// Parse validates the form against the registered accounts.
func (f TransactionForm) Parse(accounts *Accounts) (Transaction, error) {
	if err := validateForm(&f); err != nil {
		return Transaction{}, err
	}
	on, err := parseDateField("date", f.Date, date.Date{})
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseMoney(f.Amount)
	if err != nil {
		return Transaction{}, &FormError{Field: "amount", Reason: fmt.Sprintf("must be an amount, got %q", f.Amount)}
	}
	tx := Transaction{
		Date:          on,
		Description:   f.Description,
		DebitAccount:  f.DebitAccount,
		CreditAccount: f.CreditAccount,
		Amount:        amount,
	}
	if err := tx.Validate(accounts); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// StockItemForm is the raw input of a new stock item.
type StockItemForm struct {
	Name      string `form:"name" validate:"required"`
	Quantity  string `form:"quantity" validate:"required,numeric"`
	UnitPrice string `form:"price" validate:"required,numeric"`
}

// Parse validates the form.
func (f StockItemForm) Parse() (StockItem, error) {
	if err := validateForm(&f); err != nil {
		return StockItem{}, err
	}
	q, err := parseQuantityField("quantity", f.Quantity)
	if err != nil {
		return StockItem{}, err
	}
	p, err := parseMoneyField("price", f.UnitPrice)
	if err != nil {
		return StockItem{}, err
	}
	return StockItem{Name: f.Name, Quantity: q, UnitPrice: p}, nil
}

// CountForm is the raw input of a stock balance correction.
type CountForm struct {
	Name    string `form:"name" validate:"required"`
	Counted string `form:"counted" validate:"required,numeric"`
}

// Parse validates the form.
func (f CountForm) Parse() (string, Quantity, error) {
	if err := validateForm(&f); err != nil {
		return "", Quantity{}, err
	}
	q, err := parseQuantityField("counted", f.Counted)
	return f.Name, q, err
}

// ClosingForm is the raw input of a closing stock count. An empty date stands
// for today.
type ClosingForm struct {
	Name    string `form:"name" validate:"required"`
	Closing string `form:"closing" validate:"required,numeric"`
	Date    string `form:"date"`
}

// Parse validates the form.
func (f ClosingForm) Parse(today date.Date) (string, Quantity, date.Date, error) {
	if err := validateForm(&f); err != nil {
		return "", Quantity{}, date.Date{}, err
	}
	q, err := parseQuantityField("closing", f.Closing)
	if err != nil {
		return "", Quantity{}, date.Date{}, err
	}
	on, err := parseDateField("date", f.Date, today)
	return f.Name, q, on, err
}

// ShiftForm is the raw input of the end-of-shift reconciliation. Missing
// amounts count as zero.
type ShiftForm struct {
	Date        string `form:"date"`
	Shift       string `form:"shift"`
	Employee    string `form:"employee"`
	OpeningCash string `form:"opening" validate:"omitempty,numeric"`
	Sales       string `form:"sales" validate:"omitempty,numeric"`
	Payments    string `form:"payments" validate:"omitempty,numeric"`
	ActualCash  string `form:"actual" validate:"omitempty,numeric"`
}

// Parse validates the form.
func (f ShiftForm) Parse(today date.Date) (ShiftInput, error) {
	if err := validateForm(&f); err != nil {
		return ShiftInput{}, err
	}
	var in ShiftInput
	var err error
	if in.Date, err = parseDateField("date", f.Date, today); err != nil {
		return ShiftInput{}, err
	}
	in.Shift, in.Employee = f.Shift, f.Employee
	for _, m := range []struct {
		field string
		raw   string
		dst   *Money
	}{
		{"opening", f.OpeningCash, &in.OpeningCash},
		{"sales", f.Sales, &in.Sales},
		{"payments", f.Payments, &in.Payments},
		{"actual", f.ActualCash, &in.ActualCash},
	} {
		if *m.dst, err = parseMoneyField(m.field, m.raw); err != nil {
			return ShiftInput{}, err
		}
	}
	return in, nil
}

// SalesLineForm is the raw input of a sales sheet row.
type SalesLineForm struct {
	Product      string `form:"product" validate:"required"`
	OpeningStock string `form:"opening" validate:"required,numeric"`
	QuantitySold string `form:"sold" validate:"required,numeric"`
	Price        string `form:"price" validate:"required,numeric"`
}

// Parse validates the form.
func (f SalesLineForm) Parse() (SalesLine, error) {
	if err := validateForm(&f); err != nil {
		return SalesLine{}, err
	}
	var l SalesLine
	var err error
	l.Product = f.Product
	if l.OpeningStock, err = parseQuantityField("opening", f.OpeningStock); err != nil {
		return SalesLine{}, err
	}
	if l.QuantitySold, err = parseQuantityField("sold", f.QuantitySold); err != nil {
		return SalesLine{}, err
	}
	if l.Price, err = parseMoneyField("price", f.Price); err != nil {
		return SalesLine{}, err
	}
	if l.QuantitySold.GreaterThan(l.OpeningStock) {
		return SalesLine{}, &FormError{Field: "sold", Reason: fmt.Sprintf("%v exceeds opening stock %v", l.QuantitySold, l.OpeningStock), Err: ErrOversold}
	}
	return l, nil
}
