// Package store provides the regional pizza stores.
package store

import (
	"pizzastore/domain"
	"pizzastore/pizza"
)

// NYPizzaStore builds New York style pizzas. It holds no state.
type NYPizzaStore struct{}

// NewNYPizzaStore constructs a new NYPizzaStore
func NewNYPizzaStore() *NYPizzaStore {
	return &NYPizzaStore{}
}

// compile-time assertion that NYPizzaStore implements domain.PizzaFactory
var _ domain.PizzaFactory = (*NYPizzaStore)(nil)

// CreatePizza matches item exactly; case and surrounding spaces count.
func (s *NYPizzaStore) CreatePizza(item string) (domain.Pizza, bool) {
	switch item {
	case "cheese":
		return pizza.NewNYStyleCheese(), true
	default:
		return nil, false
	}
}
