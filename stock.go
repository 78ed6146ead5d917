package tillbook

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/tillbook/date"
)

// StockItem is a product kept in stock.
//
// Quantity is the current opening quantity. LastClosing is nil until the
// first closing is recorded.
type StockItem struct {
	Name        string
	Quantity    Quantity
	UnitPrice   Money
	LastClosing *Quantity
}

// Value returns Quantity·UnitPrice.
func (s StockItem) Value() Money { return s.UnitPrice.Mul(s.Quantity) }

func (s StockItem) MarshalJSON() ([]byte, error) {
	var w jsonRecord
	w.Field("name", s.Name)
	w.Field("quantity", s.Quantity)
	w.Field("unitPrice", s.UnitPrice)
	w.OmitEmpty("lastClosing", s.LastClosing)
	return w.MarshalJSON()
}

func (s *StockItem) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name        string    `json:"name"`
		Quantity    Quantity  `json:"quantity"`
		UnitPrice   Money     `json:"unitPrice"`
		LastClosing *Quantity `json:"lastClosing"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = StockItem(aux)
	return nil
}

// StockHistoryEntry is the audit record of a closing count.
type StockHistoryEntry struct {
	Date         date.Date
	Item         string
	Opening      Quantity
	Closing      Quantity
	Consumed     Quantity
	ValueOpening Money
	ValueClosing Money
}

func (h StockHistoryEntry) MarshalJSON() ([]byte, error) {
	var w jsonRecord
	w.Field("date", h.Date)
	w.Field("item", h.Item)
	w.Field("opening", h.Opening)
	w.Field("closing", h.Closing)
	w.Field("consumed", h.Consumed)
	w.Field("valueOpening", h.ValueOpening)
	w.Field("valueClosing", h.ValueClosing)
	return w.MarshalJSON()
}

func (h *StockHistoryEntry) UnmarshalJSON(data []byte) error {
	var aux struct {
		Date         date.Date `json:"date"`
		Item         string    `json:"item"`
		Opening      Quantity  `json:"opening"`
		Closing      Quantity  `json:"closing"`
		Consumed     Quantity  `json:"consumed"`
		ValueOpening Money     `json:"valueOpening"`
		ValueClosing Money     `json:"valueClosing"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*h = StockHistoryEntry(aux)
	return nil
}

// Stock is the stock ledger: the items and the history of closings.
type Stock struct {
	items   []StockItem
	history []StockHistoryEntry
}

// NewStock returns a stock ledger with the given items and history.
func NewStock(items []StockItem, history []StockHistoryEntry) *Stock {
	s := &Stock{}
	s.items = append(s.items, items...)
	s.history = append(s.history, history...)
	return s
}

func (s *Stock) find(name string) int {
	return slices.IndexFunc(s.items, func(it StockItem) bool { return it.Name == name })
}

// AddItem registers a new item. Names are trimmed and must be unique;
// quantity and price must not be negative.
func (s *Stock) AddItem(name string, quantity Quantity, unitPrice Money) (StockItem, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return StockItem{}, fmt.Errorf("cannot add stock item: %w", ErrEmptyName)
	case quantity.IsNegative():
		return StockItem{}, fmt.Errorf("cannot add stock item %q: quantity %v: %w", name, quantity, ErrNegative)
	case unitPrice.IsNegative():
		return StockItem{}, fmt.Errorf("cannot add stock item %q: price %v: %w", name, unitPrice, ErrNegative)
	case s.find(name) >= 0:
		return StockItem{}, fmt.Errorf("cannot add stock item %q: %w", name, ErrDuplicateItem)
	}
	item := StockItem{Name: name, Quantity: quantity, UnitPrice: unitPrice}
	s.items = append(s.items, item)
	return item, nil
}

// Correct overwrites the quantity of an item with a counted quantity and
// returns the variance, counted minus previous quantity.
func (s *Stock) Correct(name string, counted Quantity) (Quantity, error) {
	i := s.find(strings.TrimSpace(name))
	if i < 0 {
		return Quantity{}, fmt.Errorf("cannot correct %q: %w", name, ErrItemNotFound)
	}
	if counted.IsNegative() {
		return Quantity{}, fmt.Errorf("cannot correct %q: counted %v: %w", name, counted, ErrNegative)
	}
	variance := counted.Sub(s.items[i].Quantity)
	s.items[i].Quantity = counted
	return variance, nil
}

// RecordClosing appends a history entry for the closing count of an item on
// the given day, then rolls the closing quantity over as the next opening.
//
// Consumed may be negative when the item was restocked during the day.
func (s *Stock) RecordClosing(name string, closing Quantity, on date.Date) (StockHistoryEntry, error) {
	i := s.find(strings.TrimSpace(name))
	if i < 0 {
		return StockHistoryEntry{}, fmt.Errorf("cannot record closing of %q: %w", name, ErrItemNotFound)
	}
	if closing.IsNegative() {
		return StockHistoryEntry{}, fmt.Errorf("cannot record closing of %q: closing %v: %w", name, closing, ErrNegative)
	}
	item := &s.items[i]
	entry := StockHistoryEntry{
		Date:         on,
		Item:         item.Name,
		Opening:      item.Quantity,
		Closing:      closing,
		Consumed:     item.Quantity.Sub(closing),
		ValueOpening: item.UnitPrice.Mul(item.Quantity),
		ValueClosing: item.UnitPrice.Mul(closing),
	}
	s.history = append(s.history, entry)
	item.LastClosing = &closing
	item.Quantity = closing
	return entry, nil
}

// Available returns the item with that name.
func (s *Stock) Available(name string) (StockItem, error) {
	i := s.find(strings.TrimSpace(name))
	if i < 0 {
		return StockItem{}, fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	return s.items[i], nil
}

// Reset removes every item and the whole history.
func (s *Stock) Reset() {
	s.items = nil
	s.history = nil
}

// Items returns the items in insertion order.
func (s *Stock) Items() []StockItem {
	out := make([]StockItem, len(s.items))
	copy(out, s.items)
	return out
}

// History returns the history entries in recording order.
func (s *Stock) History() []StockHistoryEntry {
	out := make([]StockHistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// TotalValue returns Σ(quantity·unitPrice) over all items.
func (s *Stock) TotalValue() Money {
	total := Money{}
	for _, it := range s.items {
		total = total.Add(it.Value())
	}
	return total
}

// ItemHistory is the closing history of a single item, newest first.
type ItemHistory struct {
	Item    string
	Entries []StockHistoryEntry
}

// HistoryByItem groups the history by item, in the order items first appear,
// each group sorted newest first.
func (s *Stock) HistoryByItem() []ItemHistory {
	index := make(map[string]int)
	var out []ItemHistory
	for _, h := range s.history {
		i, ok := index[h.Item]
		if !ok {
			i = len(out)
			index[h.Item] = i
			out = append(out, ItemHistory{Item: h.Item})
		}
		out[i].Entries = append(out[i].Entries, h)
	}
	for _, g := range out {
		slices.Reverse(g.Entries)
		slices.SortStableFunc(g.Entries, func(a, b StockHistoryEntry) int { return date.Compare(b.Date, a.Date) })
	}
	return out
}

// NewestFirst returns the whole history, newest entries first.
func (s *Stock) NewestFirst() []StockHistoryEntry {
	out := s.History()
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b StockHistoryEntry) int { return date.Compare(b.Date, a.Date) })
	return out
}
