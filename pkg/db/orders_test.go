package db

import (
	"errors"
	"testing"

	"github.com/silh/garcombot/pkg/ledger"
)

func newTestOrdersDB(t *testing.T) *OrdersDB {
	t.Helper()
	storage, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })
	return NewOrdersDB(storage)
}

func TestOrdersDBEmpty(t *testing.T) {
	db := newTestOrdersDB(t)

	orders, err := db.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %v", orders)
	}
	if _, ok, err := db.Get("1"); ok || err != nil {
		t.Fatalf("expected missing order, got ok=%v err=%v", ok, err)
	}
}

func TestOrdersDBThroughLedger(t *testing.T) {
	l := ledger.New(newTestOrdersDB(t))

	if _, err := l.AddItems("4", "Ana", "pastel"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := l.AddItems("4", "Ana", "caldo de cana"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := l.AddItems("7", "Bruno", "água"); err != nil {
		t.Fatalf("add: %v", err)
	}

	orders, err := l.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected one order per table, got %v", orders)
	}
	if got := orders[0].Items; len(got) != 2 || got[0] != "pastel" || got[1] != "caldo de cana" {
		t.Fatalf("items should keep their order, got %v", got)
	}

	if _, err := l.Close("4"); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := l.Close("4"); !errors.Is(err, ledger.ErrNoOpenOrder) {
		t.Fatalf("expected ErrNoOpenOrder, got %v", err)
	}
	orders, _ = l.List()
	if len(orders) != 1 || orders[0].TableID != "7" {
		t.Fatalf("unexpected orders after close %v", orders)
	}
}

func TestOrdersDBMarkReadyTwiceKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	storage, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	l := ledger.New(NewOrdersDB(storage))

	if _, err := l.AddItems("3", "Ana", "pastel"); err != nil {
		t.Fatalf("add: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := l.MarkReady("3"); err != nil {
			t.Fatalf("mark ready #%d: %v", i+1, err)
		}
	}
	ready, err := l.ListByStatus(ledger.StatusReady)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ready) != 1 || ready[0].TableID != "3" {
		t.Fatalf("expected the ready order of table 3, got %v", ready)
	}
	if _, err := l.AddItems("3", "Ana", "suco"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := storage.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	storage, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })
	l = ledger.New(NewOrdersDB(storage))

	orders, err := l.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order after reopen, got %v", orders)
	}
	got := orders[0]
	if len(got.Items) != 2 || got.Items[0] != "pastel" || got.Items[1] != "suco" {
		t.Fatalf("items lost across reopen: %v", got.Items)
	}
	if got.Status != ledger.StatusOpen {
		t.Fatalf("adding an item should reopen the order, got status %q", got.Status)
	}
	if _, err := l.Close("3"); err != nil {
		t.Fatalf("close order: %v", err)
	}
}
