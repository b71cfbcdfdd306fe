package db

import (
	"encoding/json"
	"errors"

	"github.com/silh/garcombot/pkg/ledger"
	"github.com/xujiajun/nutsdb"
)

const (
	TTLInfinite  = 0
	ordersBucket = "orders"
)

// OrdersDB is a ledger.Store keeping every open order as a JSON value keyed by its table id.
type OrdersDB struct {
	storage *nutsdb.DB
}

func NewOrdersDB(storage *nutsdb.DB) *OrdersDB {
	return &OrdersDB{storage: storage}
}

func (db *OrdersDB) Get(tableID string) (ledger.Order, bool, error) {
	var (
		result ledger.Order
		found  bool
	)
	err := db.storage.View(func(tx *nutsdb.Tx) error {
		entry, err := tx.Get(ordersBucket, []byte(tableID))
		if isMissing(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := json.Unmarshal(entry.Value, &result); err != nil {
			return err
		}
		found = true
		return nil
	})
	return result, found, err
}

// Put replaces the stored order of the same table, if any.
func (db *OrdersDB) Put(order ledger.Order) error {
	data, err := json.Marshal(&order)
	if err != nil {
		return err
	}
	return db.storage.Update(func(tx *nutsdb.Tx) error {
		return tx.Put(ordersBucket, []byte(order.TableID), data, TTLInfinite)
	})
}

func (db *OrdersDB) Delete(tableID string) error {
	return db.storage.Update(func(tx *nutsdb.Tx) error {
		return tx.Delete(ordersBucket, []byte(tableID))
	})
}

func (db *OrdersDB) All() ([]ledger.Order, error) {
	var result []ledger.Order
	err := db.storage.View(func(tx *nutsdb.Tx) error {
		entries, err := tx.GetAll(ordersBucket)
		if errors.Is(err, nutsdb.ErrBucketEmpty) || errors.Is(err, nutsdb.ErrBucketNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		result = make([]ledger.Order, len(entries))
		for i, entry := range entries {
			if err := json.Unmarshal(entry.Value, &result[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return result, err
}

func isMissing(err error) bool {
	return errors.Is(err, nutsdb.ErrBucketNotFound) ||
		errors.Is(err, nutsdb.ErrKeyNotFound) ||
		errors.Is(err, nutsdb.ErrNotFoundKey)
}
