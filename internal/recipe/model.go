package recipe

import (
	"errors"
	"fmt"
)

type Ingredient struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

type Nutrition struct {
	Kcal     int `json:"kcal"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

type Recipe struct {
	Title        string       `json:"title"`
	Ingredients  []Ingredient `json:"ingredients"`
	Steps        []string     `json:"steps"`
	Equipment    []string     `json:"equipment"`
	Nutrition    Nutrition    `json:"nutrition"`
	ShoppingList []string     `json:"shoppingList"`
	Warnings     []string     `json:"warnings"`
}

var errSchema = errors.New("recipe failed schema validation")

// Validate enforces the response schema the clients rely on.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("%w: missing title", errSchema)
	}
	if len(r.Steps) == 0 {
		return fmt.Errorf("%w: no steps", errSchema)
	}
	for _, ing := range r.Ingredients {
		if ing.Name == "" || ing.Quantity < 0 {
			return fmt.Errorf("%w: bad ingredient %q", errSchema, ing.Name)
		}
	}
	if r.Nutrition.Kcal < 0 || r.Nutrition.ProteinG < 0 {
		return fmt.Errorf("%w: negative nutrition", errSchema)
	}
	return nil
}
