package ledger

// MemoryStore keeps orders in a map and loses them on restart.
type MemoryStore struct {
	orders map[string]Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]Order)}
}

func (s *MemoryStore) Get(tableID string) (Order, bool, error) {
	order, ok := s.orders[tableID]
	if !ok {
		return Order{}, false, nil
	}
	order.Items = append([]string(nil), order.Items...)
	return order, true, nil
}

func (s *MemoryStore) Put(order Order) error {
	order.Items = append([]string(nil), order.Items...)
	s.orders[order.TableID] = order
	return nil
}

func (s *MemoryStore) Delete(tableID string) error {
	delete(s.orders, tableID)
	return nil
}

func (s *MemoryStore) All() ([]Order, error) {
	result := make([]Order, 0, len(s.orders))
	for _, order := range s.orders {
		result = append(result, order)
	}
	return result, nil
}
