// Package memory keeps marketplace data in process memory. It backs the
// STORAGE=memory mode and tests that exercise the application layer
// without a database.
//
// A unit of work takes the store lock in Begin and works on a private copy
// of the data. Commit swaps the copy in; Rollback drops it. Transactions
// are therefore serialized.
package memory

import (
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// Store holds all records. The zero value is not usable; use NewStore.
type Store struct {
	mu   sync.Mutex
	data *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: newState()}
}

type state struct {
	orders      map[string]orderRecord
	customers   map[string]customerRecord
	restaurants map[string]restaurantRecord
	products    map[string]productRecord
}

func newState() *state {
	return &state{
		orders:      make(map[string]orderRecord),
		customers:   make(map[string]customerRecord),
		restaurants: make(map[string]restaurantRecord),
		products:    make(map[string]productRecord),
	}
}

// clone copies the maps. Records are values and are replaced, never
// mutated, so sharing their pointer fields is safe.
func (s *state) clone() *state {
	c := &state{
		orders:      make(map[string]orderRecord, len(s.orders)),
		customers:   make(map[string]customerRecord, len(s.customers)),
		restaurants: make(map[string]restaurantRecord, len(s.restaurants)),
		products:    make(map[string]productRecord, len(s.products)),
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.restaurants {
		c.restaurants[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	return c
}

type orderRecord struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	total           kernel.Money
	deliveryAddress string
	notes           string
	status          order.Status
	createdAt       time.Time
	deliveredAt     *time.Time
}

type customerRecord struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	address      string
	active       bool
	registeredAt time.Time
}

type restaurantRecord struct {
	id           kernel.UUID
	name         string
	category     string
	address      string
	phone        string
	openingHours string
	rating       *float64
	active       bool
}

type productRecord struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Money
	category     string
	imageURL     string
	available    bool
}
