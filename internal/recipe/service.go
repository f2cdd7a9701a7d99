package recipe

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// Service produces deterministic, schema-valid recipe text for a list
// of dish names. A stand-in for an LLM provider: same inputs, same
// output, no network.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

var shellfishRe = regexp.MustCompile(`(?i)shellfish|clam|shrimp`)

// Generate builds the recipe and validates it against the response
// schema, retrying once in corrective mode (a simplified shape) before
// giving up.
func (s *Service) Generate(ctx context.Context, dishes []string) (*Recipe, error) {
	if len(dishes) == 0 {
		return nil, fmt.Errorf("at least one dish is required")
	}

	corrective := false
	var out *Recipe

	backoff := retry.WithMaxRetries(1, retry.NewConstant(time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		out = generateStub(dishes, corrective)
		if err := out.Validate(); err != nil {
			corrective = true
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func generateStub(dishes []string, corrective bool) *Recipe {
	title := "MealSlot Combo: " + strings.Join(dishes, " + ")
	baseQ := 2 + int(hash(strings.Join(dishes, "|"))%3)
	if baseQ < 1 {
		baseQ = 1
	}

	ingredients := make([]Ingredient, 0, len(dishes))
	shopping := make([]string, 0, len(dishes))
	for _, d := range dishes {
		ingredients = append(ingredients, Ingredient{Name: d, Quantity: baseQ, Unit: "portion"})
		shopping = append(shopping, d+" ingredients")
	}

	steps := []string{
		"Read all steps before starting.",
		"Prep ingredients for: " + strings.Join(dishes, ", ") + ".",
		"Cook components in parallel where possible.",
		"Plate and serve.",
	}
	if corrective {
		steps = steps[:3]
	}

	var warnings []string
	for _, d := range dishes {
		if shellfishRe.MatchString(d) {
			warnings = append(warnings, "Contains shellfish")
			break
		}
	}

	return &Recipe{
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
		Equipment:   []string{"knife", "cutting board", "pan", "pot"},
		Nutrition: Nutrition{
			Kcal:     600 + int(hash(title)%200),
			ProteinG: 20 + int(hash(title+"p")%30),
			CarbsG:   50,
			FatG:     20,
		},
		ShoppingList: shopping,
		Warnings:     warnings,
	}
}

func hash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}
