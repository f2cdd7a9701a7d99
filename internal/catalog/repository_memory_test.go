package catalog

import (
	"context"
	"testing"
)

func TestSeedCatalogShape(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()

	cats, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}
	want := []string{"meat", "veg", "staple", "soup"}
	if len(cats) != len(want) {
		t.Fatalf("got categories %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("got categories %v, want %v", cats, want)
		}
	}

	for _, cat := range want {
		dishes, err := repo.GetByCategory(ctx, cat)
		if err != nil {
			t.Fatalf("get by category failed: %v", err)
		}
		if len(dishes) == 0 {
			t.Fatalf("seed category %q is empty", cat)
		}
		for _, d := range dishes {
			if d.ID == "" || d.Name == "" {
				t.Fatalf("seed dish missing id or name: %+v", d)
			}
			if d.Category != cat {
				t.Fatalf("dish %q in wrong bucket: %q", d.ID, d.Category)
			}
		}
	}
}

func TestGetByCategoryPreservesOrder(t *testing.T) {
	dishes := []Dish{
		{ID: "b", Name: "B", Category: "veg"},
		{ID: "a", Name: "A", Category: "veg"},
		{ID: "x", Name: "X", Category: "meat"},
	}
	repo := NewInMemoryRepository(dishes)

	got, err := repo.GetByCategory(context.Background(), "veg")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("catalog order not preserved: %v", got)
	}
}

func TestGetByID(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()

	byID, err := repo.GetByID(ctx, "caesar-salad")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if byID == nil || byID.Name != "Caesar Salad" {
		t.Fatalf("lookup by id failed: %+v", byID)
	}

	byName, err := repo.GetByID(ctx, "Caesar Salad")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if byName == nil || byName.ID != "caesar-salad" {
		t.Fatalf("lookup by exact name failed: %+v", byName)
	}

	missing, err := repo.GetByID(ctx, "no-such-dish")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("unknown id should be nil, got %+v", missing)
	}
}

func TestListFilters(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	f, err := repo.ListFilters(context.Background())
	if err != nil {
		t.Fatalf("filters failed: %v", err)
	}
	if len(f.Categories) != 4 {
		t.Fatalf("want 4 categories, got %v", f.Categories)
	}
	if len(f.Allergens) == 0 {
		t.Fatal("seed catalog should surface allergens for the filter menu")
	}

	seen := make(map[string]bool)
	for _, a := range f.Allergens {
		if seen[a] {
			t.Fatalf("duplicate allergen %q in filter menu", a)
		}
		seen[a] = true
	}
}
