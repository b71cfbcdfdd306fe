package ledger

import (
	"errors"
	"fmt"
	"sort"
)

const (
	StatusOpen  = "aberto"
	StatusReady = "pronto"
)

var ErrNoOpenOrder = errors.New("no open order for table")

// Order is the open order of one table.
type Order struct {
	TableID  string   `json:"tableID"`
	OpenedBy string   `json:"openedBy"`
	Items    []string `json:"items"`
	Status   string   `json:"status"`
}

// Store keeps orders by table id. A table id maps to at most one order.
type Store interface {
	Get(tableID string) (Order, bool, error)
	Put(order Order) error
	Delete(tableID string) error
	All() ([]Order, error)
}

// Ledger is the table to open order mapping. It does no locking, callers are expected to use it from a
// single goroutine.
type Ledger struct {
	store Store
}

func New(store Store) *Ledger {
	return &Ledger{store: store}
}

// AddItems appends items to the table's order, opening it on behalf of openedBy when the table has none.
func (l *Ledger) AddItems(tableID, openedBy string, items ...string) (Order, error) {
	order, ok, err := l.store.Get(tableID)
	if err != nil {
		return Order{}, fmt.Errorf("failed to read order of table %s: %w", tableID, err)
	}
	if !ok {
		order = Order{TableID: tableID, OpenedBy: openedBy}
	}
	order.Items = append(order.Items, items...)
	order.Status = StatusOpen
	if err := l.store.Put(order); err != nil {
		return Order{}, fmt.Errorf("failed to store order of table %s: %w", tableID, err)
	}
	return order, nil
}

// MarkReady sets the order status to ready.
func (l *Ledger) MarkReady(tableID string) (Order, error) {
	order, err := l.get(tableID)
	if err != nil {
		return Order{}, err
	}
	order.Status = StatusReady
	if err := l.store.Put(order); err != nil {
		return Order{}, fmt.Errorf("failed to store order of table %s: %w", tableID, err)
	}
	return order, nil
}

// Close removes the order and returns it. Nothing is archived.
func (l *Ledger) Close(tableID string) (Order, error) {
	order, err := l.get(tableID)
	if err != nil {
		return Order{}, err
	}
	if err := l.store.Delete(tableID); err != nil {
		return Order{}, fmt.Errorf("failed to delete order of table %s: %w", tableID, err)
	}
	return order, nil
}

// List returns all orders sorted by table id, numeric ids in numeric order.
func (l *Ledger) List() ([]Order, error) {
	orders, err := l.store.All()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	sort.Slice(orders, func(i, j int) bool {
		return lessTableID(orders[i].TableID, orders[j].TableID)
	})
	return orders, nil
}

// ListByStatus returns orders with the given status, sorted as in List.
func (l *Ledger) ListByStatus(status string) ([]Order, error) {
	orders, err := l.List()
	if err != nil {
		return nil, err
	}
	filtered := make([]Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

func (l *Ledger) get(tableID string) (Order, error) {
	order, ok, err := l.store.Get(tableID)
	if err != nil {
		return Order{}, fmt.Errorf("failed to read order of table %s: %w", tableID, err)
	}
	if !ok {
		return Order{}, fmt.Errorf("%w %s", ErrNoOpenOrder, tableID)
	}
	return order, nil
}

// lessTableID puts shorter ids first so "2" sorts before "10".
func lessTableID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
