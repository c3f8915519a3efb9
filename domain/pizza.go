// Package domain defines core business types and interfaces.
package domain

// Pizza represents anything a PizzaFactory can build
type Pizza interface {
	ID() string
	Name() string
	Style() string
}

// PizzaFactory decides which concrete Pizza to build for an item.
// ok is false when the item is not on this factory's menu; that is not an error.
type PizzaFactory interface {
	CreatePizza(item string) (p Pizza, ok bool)
}
