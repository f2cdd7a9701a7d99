package recipe

import (
	"context"
	"reflect"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	svc := NewService()
	dishes := []string{"Grilled Chicken", "White Rice", "Miso Soup"}

	a, err := svc.Generate(context.Background(), dishes)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := svc.Generate(context.Background(), dishes)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same dish list must produce the same recipe")
	}
}

func TestGenerateSchemaValid(t *testing.T) {
	svc := NewService()

	out, err := svc.Generate(context.Background(), []string{"Caesar Salad"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := out.Validate(); err != nil {
		t.Fatalf("generated recipe fails its own schema: %v", err)
	}
	if len(out.Ingredients) != 1 {
		t.Fatalf("want one ingredient per dish, got %d", len(out.Ingredients))
	}
	if len(out.ShoppingList) != 1 {
		t.Fatalf("want one shopping entry per dish, got %d", len(out.ShoppingList))
	}
}

func TestGenerateRequiresDishes(t *testing.T) {
	svc := NewService()
	if _, err := svc.Generate(context.Background(), nil); err == nil {
		t.Fatal("empty dish list should be rejected")
	}
}

func TestGenerateShellfishWarning(t *testing.T) {
	svc := NewService()

	out, err := svc.Generate(context.Background(), []string{"Shrimp Skewers", "White Rice"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(out.Warnings) != 1 || out.Warnings[0] != "Contains shellfish" {
		t.Fatalf("shellfish dish should warn exactly once, got %v", out.Warnings)
	}

	plain, err := svc.Generate(context.Background(), []string{"White Rice"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(plain.Warnings) != 0 {
		t.Fatalf("no warning expected, got %v", plain.Warnings)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr bool
	}{
		{
			name:   "minimal valid",
			recipe: Recipe{Title: "T", Steps: []string{"cook"}},
		},
		{
			name:    "missing title",
			recipe:  Recipe{Steps: []string{"cook"}},
			wantErr: true,
		},
		{
			name:    "no steps",
			recipe:  Recipe{Title: "T"},
			wantErr: true,
		},
		{
			name: "bad ingredient",
			recipe: Recipe{
				Title:       "T",
				Steps:       []string{"cook"},
				Ingredients: []Ingredient{{Name: "", Quantity: 1}},
			},
			wantErr: true,
		},
		{
			name: "negative nutrition",
			recipe: Recipe{
				Title:     "T",
				Steps:     []string{"cook"},
				Nutrition: Nutrition{Kcal: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
