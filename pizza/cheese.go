// Package pizza holds the concrete pizzas the regional stores can build.
package pizza

import (
	"encoding/json"

	"pizzastore/domain"
	"pizzastore/util"
)

// StyleNY marks pizzas built by the New York store
const StyleNY = "ny"

// NYStyleCheese is the New York style sauce and cheese pizza
type NYStyleCheese struct {
	id string
}

// compile-time assertion that NYStyleCheese implements domain.Pizza
var _ domain.Pizza = (*NYStyleCheese)(nil)

// NewNYStyleCheese constructs a fresh NYStyleCheese with its own ID
func NewNYStyleCheese() *NYStyleCheese {
	return &NYStyleCheese{id: util.GenerateUUID()}
}

// ID returns the identifier assigned at construction
func (p *NYStyleCheese) ID() string { return p.id }

// Name returns the menu name of the pizza
func (p *NYStyleCheese) Name() string { return "NY Style Sauce and Cheese Pizza" }

// Style returns the regional style, always StyleNY
func (p *NYStyleCheese) Style() string { return StyleNY }

// MarshalJSON renders the pizza the way the CLI prints it
func (p *NYStyleCheese) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Style string `json:"style"`
	}{p.ID(), p.Name(), p.Style()})
}
