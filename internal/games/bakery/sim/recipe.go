package sim

import "fmt"

// Recipe maps a set of ingredients to the cake it bakes into.
type Recipe struct {
	Ingredients ItemSet
	Result      CakeType
}

// RecipeTable is the fixed list of recipes of a session. Lookups walk the
// recipes in the order they were given.
type RecipeTable struct {
	recipes []Recipe
}

// NewRecipeTable validates and freezes the given recipes. Two recipes with
// the same ingredient set are rejected.
func NewRecipeTable(recipes ...Recipe) (*RecipeTable, error) {
	seen := make(map[ItemSet]CakeType, len(recipes))
	for _, r := range recipes {
		if r.Ingredients == 0 {
			return nil, fmt.Errorf("recipe for %s has no ingredients", r.Result)
		}
		if r.Result == CakeNone || r.Result >= cakeEnd {
			return nil, fmt.Errorf("recipe %s has no valid result", r.Ingredients)
		}
		if prev, ok := seen[r.Ingredients]; ok {
			return nil, fmt.Errorf("recipe %s is defined for both %s and %s", r.Ingredients, prev, r.Result)
		}
		seen[r.Ingredients] = r.Result
	}
	return &RecipeTable{recipes: append([]Recipe(nil), recipes...)}, nil
}

// Len returns the number of recipes.
func (t *RecipeTable) Len() int {
	return len(t.recipes)
}

// Recipes returns a copy of the recipes in table order.
func (t *RecipeTable) Recipes() []Recipe {
	return append([]Recipe(nil), t.recipes...)
}

// Match finds the first recipe whose ingredient set contains every item in
// slots. Any empty slot means the ingredients are not all there yet and no
// recipe matches, even one the occupied slots alone would satisfy.
func (t *RecipeTable) Match(slots []ItemType) (CakeType, bool) {
	for _, s := range slots {
		if s == ItemNone {
			return CakeNone, false
		}
	}

recipes:
	for _, r := range t.recipes {
		for _, s := range slots {
			if !r.Ingredients.Has(s) {
				continue recipes
			}
		}
		return r.Result, true
	}
	return CakeNone, false
}

// Produces reports whether some recipe results in c.
func (t *RecipeTable) Produces(c CakeType) bool {
	for _, r := range t.recipes {
		if r.Result == c {
			return true
		}
	}
	return false
}
