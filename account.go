package tillbook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AccountType classifies an account in the chart of accounts.
type AccountType int

const (
	UnknownAccountType AccountType = iota
	Asset
	Liability
	Equity
	Revenue
	Expense
)

// AccountTypes lists the valid account types in display order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

func (t AccountType) String() string {
	switch t {
	case Asset:
		return "Asset"
	case Liability:
		return "Liability"
	case Equity:
		return "Equity"
	case Revenue:
		return "Revenue"
	case Expense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// ParseAccountType parses an account type name, case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	for _, t := range AccountTypes {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return UnknownAccountType, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t AccountType) MarshalJSON() ([]byte, error) {
	if t == UnknownAccountType {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return json.Marshal(t.String())
}

func (t *AccountType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseAccountType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Account is an entry of the chart of accounts.
type Account struct {
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// Accounts is the account registry. Accounts are kept in insertion order and
// keyed by their unique name.
type Accounts struct {
	list []Account
}

// NewAccounts returns a registry holding the given accounts.
func NewAccounts(accounts ...Account) *Accounts {
	a := &Accounts{}
	a.list = append(a.list, accounts...)
	return a
}

// Add registers a new account. The name is trimmed; empty and duplicate names
// are rejected.
func (a *Accounts) Add(name string, typ AccountType) (Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Account{}, fmt.Errorf("cannot add account: %w", ErrEmptyName)
	}
	if typ < Asset || typ > Expense {
		return Account{}, fmt.Errorf("cannot add account %q: %w", name, ErrUnknownType)
	}
	if a.Has(name) {
		return Account{}, fmt.Errorf("cannot add account %q: %w", name, ErrDuplicateAccount)
	}
	acc := Account{Name: name, Type: typ}
	a.list = append(a.list, acc)
	return acc, nil
}

// Has reports whether an account with this name is registered.
func (a *Accounts) Has(name string) bool {
	_, ok := a.Type(name)
	return ok
}

// Type returns the type of the named account.
func (a *Accounts) Type(name string) (AccountType, bool) {
	for _, acc := range a.list {
		if acc.Name == name {
			return acc.Type, true
		}
	}
	return UnknownAccountType, false
}

// Clear removes every account. Transactions referring to them are left as is.
func (a *Accounts) Clear() { a.list = nil }

// Len returns the number of registered accounts.
func (a *Accounts) Len() int { return len(a.list) }

// All returns the accounts in insertion order.
func (a *Accounts) All() []Account {
	out := make([]Account, len(a.list))
	copy(out, a.list)
	return out
}

// Names returns the account names in insertion order.
func (a *Accounts) Names() []string {
	out := make([]string, 0, len(a.list))
	for _, acc := range a.list {
		out = append(out, acc.Name)
	}
	return out
}
