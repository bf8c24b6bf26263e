package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-bakery/internal/games/bakery/sim"
)

// MaxCapacity is the largest supported inventory.
const MaxCapacity = 4

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid bakery config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks that the config describes a playable kitchen: a capacity
// in 1..MaxCapacity, known item and cake names, at most one spawn per item,
// recipes without repeated ingredients and a recipe for every cake.
func Validate(cfg BakeryConfig) error {
	if cfg.Inventory.Capacity < 1 || cfg.Inventory.Capacity > MaxCapacity {
		return invalid("inventory capacity %d outside 1..%d", cfg.Inventory.Capacity, MaxCapacity)
	}
	if cfg.Player.Size.W <= 0 || cfg.Player.Size.H <= 0 {
		return invalid("player has no size")
	}
	if cfg.Customer.Size.W <= 0 || cfg.Customer.Size.H <= 0 {
		return invalid("customer has no size")
	}
	stations := []struct {
		name string
		st   StationConfig
	}{{"counter", cfg.Counter}, {"table", cfg.Table}, {"bin", cfg.Bin}}
	for _, s := range stations {
		if s.st.Trigger.W <= 0 || s.st.Trigger.H <= 0 {
			return invalid("%s has no trigger area", s.name)
		}
	}

	seen := make(map[sim.ItemType]bool)
	for _, it := range cfg.Items {
		t, err := sim.ParseItem(it.Name)
		if err != nil {
			return invalid("items: %v", err)
		}
		if seen[t] {
			return invalid("item %s spawned twice", t)
		}
		seen[t] = true
	}

	for _, c := range cfg.Cakes {
		if _, err := sim.ParseCake(c.Name); err != nil {
			return invalid("cakes: %v", err)
		}
	}

	recipes, err := ParseRecipes(cfg.Recipes)
	if err != nil {
		return err
	}
	table, err := sim.NewRecipeTable(recipes...)
	if err != nil {
		return invalid("recipes: %v", err)
	}
	for _, c := range sim.AllCakes() {
		if !table.Produces(c) {
			return invalid("no recipe bakes %s", c)
		}
	}
	return nil
}

// ParseRecipes converts recipe names into sim recipes.
func ParseRecipes(in []RecipeConfig) ([]sim.Recipe, error) {
	out := make([]sim.Recipe, 0, len(in))
	for _, rc := range in {
		cake, err := sim.ParseCake(rc.Cake)
		if err != nil {
			return nil, invalid("recipe: %v", err)
		}
		var set sim.ItemSet
		for _, name := range rc.Ingredients {
			t, err := sim.ParseItem(name)
			if err != nil {
				return nil, invalid("recipe %s: %v", cake, err)
			}
			if set.Has(t) {
				return nil, invalid("recipe %s lists %s twice", cake, t)
			}
			set |= sim.NewItemSet(t)
		}
		out = append(out, sim.Recipe{Ingredients: set, Result: cake})
	}
	return out, nil
}
