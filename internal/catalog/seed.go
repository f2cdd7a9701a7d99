package catalog

// SeedDishes is the built-in catalog used by the in-memory repository
// and to seed an empty database. Order here is catalog order.
func SeedDishes() []Dish {
	return []Dish{
		{ID: "grilled-chicken", Name: "Grilled Chicken", Category: "meat", Cuisine: "American", Tags: []string{"protein"}, Allergens: nil, Kcal: 420, ProteinG: 40, TimeMin: 25, PriceCents: 500, HealthScore: 0.7},
		{ID: "beef-stir-fry", Name: "Beef Stir-Fry", Category: "meat", Cuisine: "Chinese", Tags: []string{"wok"}, Allergens: []string{"soy"}, Kcal: 520, ProteinG: 35, TimeMin: 22, PriceCents: 650, HealthScore: 0.6},
		{ID: "tofu-steak", Name: "Tofu Steak", Category: "meat", Cuisine: "Japanese", Tags: []string{"vegetarian"}, Allergens: []string{"soy"}, Kcal: 250, ProteinG: 20, TimeMin: 15, PriceCents: 300, HealthScore: 0.8},
		{ID: "turkey-meatballs", Name: "Turkey Meatballs", Category: "meat", Cuisine: "Italian", Tags: []string{"lean"}, Allergens: []string{"egg", "gluten"}, Kcal: 410, ProteinG: 35, TimeMin: 26, PriceCents: 520, HealthScore: 0.72},
		{ID: "paneer-tikka", Name: "Paneer Tikka", Category: "meat", Cuisine: "Indian", Tags: []string{"vegetarian"}, Allergens: []string{"dairy"}, Kcal: 350, ProteinG: 22, TimeMin: 24, PriceCents: 350, HealthScore: 0.7},
		{ID: "roast-salmon", Name: "Roast Salmon", Category: "meat", Cuisine: "American", Tags: []string{"omega3"}, Allergens: []string{"fish"}, Kcal: 430, ProteinG: 34, TimeMin: 18, PriceCents: 900, HealthScore: 0.9},

		{ID: "lentil-curry", Name: "Lentil Curry", Category: "veg", Cuisine: "Indian", Tags: []string{"vegan", "spicy"}, Allergens: nil, Kcal: 380, ProteinG: 18, TimeMin: 30, PriceCents: 250, HealthScore: 0.85},
		{ID: "caesar-salad", Name: "Caesar Salad", Category: "veg", Cuisine: "Italian", Tags: []string{"salad"}, Allergens: []string{"dairy", "egg", "gluten"}, Kcal: 300, ProteinG: 10, TimeMin: 10, PriceCents: 200, HealthScore: 0.75},
		{ID: "stir-fried-greens", Name: "Stir-fried Greens", Category: "veg", Cuisine: "Chinese", Tags: []string{"vegan"}, Allergens: nil, Kcal: 120, ProteinG: 5, TimeMin: 8, PriceCents: 150, HealthScore: 0.9},
		{ID: "veggie-medley", Name: "Veggie Medley", Category: "veg", Cuisine: "Fusion", Tags: []string{"vegan"}, Allergens: nil, Kcal: 220, ProteinG: 6, TimeMin: 12, PriceCents: 160, HealthScore: 0.88},
		{ID: "greek-salad", Name: "Greek Salad", Category: "veg", Cuisine: "Greek", Tags: []string{"salad", "vegetarian"}, Allergens: []string{"dairy"}, Kcal: 320, ProteinG: 8, TimeMin: 12, PriceCents: 220, HealthScore: 0.8},
		{ID: "chickpea-stew", Name: "Chickpea Stew", Category: "veg", Cuisine: "Moroccan", Tags: []string{"vegan"}, Allergens: nil, Kcal: 410, ProteinG: 18, TimeMin: 35, PriceCents: 230, HealthScore: 0.82},

		{ID: "fried-rice", Name: "Fried Rice", Category: "staple", Cuisine: "Chinese", Tags: []string{"rice"}, Allergens: []string{"egg", "soy"}, Kcal: 520, ProteinG: 12, TimeMin: 18, PriceCents: 180, HealthScore: 0.55},
		{ID: "garlic-noodles", Name: "Garlic Noodles", Category: "staple", Cuisine: "Vietnamese", Tags: []string{"noodles"}, Allergens: []string{"gluten"}, Kcal: 480, ProteinG: 9, TimeMin: 16, PriceCents: 170, HealthScore: 0.5},
		{ID: "quinoa-bowl", Name: "Quinoa Bowl", Category: "staple", Cuisine: "Fusion", Tags: []string{"gluten-free", "vegan"}, Allergens: nil, Kcal: 430, ProteinG: 14, TimeMin: 25, PriceCents: 320, HealthScore: 0.82},
		{ID: "soba-salad", Name: "Soba Salad", Category: "staple", Cuisine: "Japanese", Tags: []string{"noodles", "cold"}, Allergens: []string{"gluten"}, Kcal: 390, ProteinG: 13, TimeMin: 20, PriceCents: 260, HealthScore: 0.76},
		{ID: "brown-rice", Name: "Brown Rice", Category: "staple", Cuisine: "American", Tags: []string{"wholegrain", "vegan"}, Allergens: nil, Kcal: 215, ProteinG: 5, TimeMin: 30, PriceCents: 120, HealthScore: 0.8},
		{ID: "mashed-potatoes", Name: "Mashed Potatoes", Category: "staple", Cuisine: "American", Tags: []string{"comfort", "vegetarian"}, Allergens: []string{"dairy"}, Kcal: 360, ProteinG: 6, TimeMin: 25, PriceCents: 140, HealthScore: 0.5},
		{ID: "bulgur-pilaf", Name: "Bulgur Pilaf", Category: "staple", Cuisine: "Turkish", Tags: []string{"wholegrain", "vegan"}, Allergens: []string{"gluten"}, Kcal: 350, ProteinG: 9, TimeMin: 22, PriceCents: 180, HealthScore: 0.77},

		{ID: "tomato-soup", Name: "Tomato Soup", Category: "soup", Cuisine: "American", Tags: []string{"vegetarian"}, Allergens: nil, Kcal: 150, ProteinG: 4, TimeMin: 14, PriceCents: 120, HealthScore: 0.78},
		{ID: "miso-soup", Name: "Miso Soup", Category: "soup", Cuisine: "Japanese", Tags: []string{"umami", "vegetarian"}, Allergens: []string{"soy"}, Kcal: 90, ProteinG: 5, TimeMin: 7, PriceCents: 100, HealthScore: 0.8},
		{ID: "chicken-noodle-soup", Name: "Chicken Noodle Soup", Category: "soup", Cuisine: "American", Tags: []string{"classic"}, Allergens: []string{"gluten"}, Kcal: 280, ProteinG: 18, TimeMin: 28, PriceCents: 200, HealthScore: 0.7},
		{ID: "pho-broth", Name: "Pho Broth", Category: "soup", Cuisine: "Vietnamese", Tags: []string{"herbs"}, Allergens: nil, Kcal: 120, ProteinG: 10, TimeMin: 180, PriceCents: 400, HealthScore: 0.65},
		{ID: "ramen-broth", Name: "Ramen Broth", Category: "soup", Cuisine: "Japanese", Tags: []string{"rich"}, Allergens: []string{"gluten"}, Kcal: 250, ProteinG: 15, TimeMin: 240, PriceCents: 500, HealthScore: 0.4},
		{ID: "clam-chowder", Name: "Clam Chowder", Category: "soup", Cuisine: "American", Tags: []string{"seafood"}, Allergens: []string{"shellfish", "dairy"}, Kcal: 450, ProteinG: 20, TimeMin: 40, PriceCents: 450, HealthScore: 0.45},
		{ID: "minestrone", Name: "Minestrone", Category: "soup", Cuisine: "Italian", Tags: []string{"vegetarian"}, Allergens: []string{"gluten"}, Kcal: 280, ProteinG: 12, TimeMin: 35, PriceCents: 220, HealthScore: 0.78},
	}
}
