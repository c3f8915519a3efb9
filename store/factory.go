package store

import "pizzastore/domain"

// NewStore constructs a domain.PizzaFactory by kind: "ny" or "newyork".
func NewStore(kind string) (domain.PizzaFactory, error) {
	switch kind {
	case "ny", "newyork":
		return NewNYPizzaStore(), nil
	default:
		return nil, domain.NewUnknownStoreError(kind)
	}
}
