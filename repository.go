package tillbook

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/etnz/tillbook/store"
	"github.com/sirupsen/logrus"
)

// Repository loads and saves a Book, one store key per collection.
//
// List collections are stored as JSONL, the shift report as a single JSON
// object and the cash on hand as decimal text. A missing or corrupt key loads
// as an empty collection; only store I/O errors fail a load.
type Repository struct {
	store store.Store
	log   logrus.FieldLogger
}

// NewRepository returns a Repository over s.
func NewRepository(s store.Store, log logrus.FieldLogger) *Repository {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Repository{store: s, log: log}
}

// encodeJSONL writes one JSON record per line.
func encodeJSONL[T any](items []T) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			return nil, fmt.Errorf("cannot encode record %d: %w", i+1, err)
		}
	}
	return buf.Bytes(), nil
}

// decodeJSONL parses one JSON record per line, blank lines are ignored.
func decodeJSONL[T any](data []byte) ([]T, error) {
	var out []T
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", n, err)
		}
		out = append(out, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// read returns the value of a collection, or nil when it does not exist.
func (r *Repository) read(ctx context.Context, c Collection) ([]byte, error) {
	data, err := r.store.Get(ctx, string(c))
	if errors.Is(err, store.ErrNotFound) {
		r.log.WithField("key", c).Debug("missing-collection")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", c, err)
	}
	return data, nil
}

func (r *Repository) corrupt(c Collection, err error) {
	r.log.WithFields(logrus.Fields{"key": c, "error": err}).Warn("corrupt-collection")
}

// loadList reads a JSONL collection. Corrupt data is reported and loads as
// nil.
func loadList[T any](ctx context.Context, r *Repository, c Collection) ([]T, error) {
	data, err := r.read(ctx, c)
	if err != nil || data == nil {
		return nil, err
	}
	items, err := decodeJSONL[T](data)
	if err != nil {
		r.corrupt(c, err)
		return nil, nil
	}
	return items, nil
}

// Load reads every collection into a new Book.
func (r *Repository) Load(ctx context.Context) (*Book, error) {
	b := NewBook(r.log)
	var errs []error

	accounts, err := loadList[Account](ctx, r, AccountsCollection)
	errs = append(errs, err)
	b.Accounts = NewAccounts(accounts...)

	txs, err := loadList[Transaction](ctx, r, TransactionsCollection)
	errs = append(errs, err)
	b.Ledger = NewLedger(txs...)

	items, err := loadList[StockItem](ctx, r, StockCollection)
	errs = append(errs, err)
	history, err := loadList[StockHistoryEntry](ctx, r, HistoryCollection)
	errs = append(errs, err)
	b.Stock = NewStock(items, history)

	lines, err := loadList[SalesLine](ctx, r, SalesCollection)
	errs = append(errs, err)
	b.Sales = NewSalesSheet(lines...)

	if data, err := r.read(ctx, ShiftCollection); err != nil {
		errs = append(errs, err)
	} else if data != nil {
		if err := json.Unmarshal(data, &b.Shift); err != nil {
			r.corrupt(ShiftCollection, err)
			b.Shift = ShiftReport{}
		}
	}

	if data, err := r.read(ctx, CashCollection); err != nil {
		errs = append(errs, err)
	} else if data != nil {
		m, err := ParseMoney(string(data))
		if err == nil {
			err = ValidateCashOnHand(m)
		}
		if err != nil {
			r.corrupt(CashCollection, err)
		} else {
			b.CashOnHand = m
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	r.log.WithField("book", b.String()).Debug("load-book")
	return b, nil
}

// encode returns the stored form of collection c.
func encode(b *Book, c Collection) ([]byte, error) {
	switch c {
	case AccountsCollection:
		return encodeJSONL(b.Accounts.list)
	case TransactionsCollection:
		return encodeJSONL(b.Ledger.transactions)
	case StockCollection:
		return encodeJSONL(b.Stock.items)
	case HistoryCollection:
		return encodeJSONL(b.Stock.history)
	case SalesCollection:
		return encodeJSONL(b.Sales.lines)
	case ShiftCollection:
		return json.Marshal(b.Shift)
	case CashCollection:
		return []byte(b.CashOnHand.String()), nil
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}
}

// Save writes the collections modified since the last load or save.
func (r *Repository) Save(ctx context.Context, b *Book) error {
	return r.save(ctx, b, b.Dirty())
}

// SaveAll writes every collection.
func (r *Repository) SaveAll(ctx context.Context, b *Book) error {
	return r.save(ctx, b, Collections)
}

func (r *Repository) save(ctx context.Context, b *Book, cs []Collection) error {
	var errs []error
	for _, c := range cs {
		data, err := encode(b, c)
		if err == nil {
			err = r.store.Put(ctx, string(c), data)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("cannot save %s: %w", c, err))
			continue
		}
		delete(b.dirty, c)
		r.log.WithFields(logrus.Fields{"key": c, "size": len(data)}).Debug("save-collection")
	}
	return errors.Join(errs...)
}

// Snapshot returns the whole book as generic JSON values (maps, slices,
// strings, float64), suitable for querying.
func (b *Book) Snapshot() (map[string]any, error) {
	doc := map[string]any{
		"accounts":     b.Accounts.list,
		"transactions": b.Ledger.transactions,
		"stock":        b.Stock.items,
		"stockHistory": b.Stock.history,
		"shift":        b.Shift,
		"cashOnHand":   b.CashOnHand,
		"salesSheet":   b.Sales.lines,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot snapshot book: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cannot snapshot book: %w", err)
	}
	return out, nil
}
