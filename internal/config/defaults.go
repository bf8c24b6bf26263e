package config

import (
	_ "embed"
)

//go:embed defaults/bakery.yaml
var defaultBakeryYAML []byte

// DefaultBakeryConfig returns the default bakery configuration.
func DefaultBakeryConfig() BakeryConfig {
	ingredient := func(name string, x float64, color string) ItemConfig {
		return ItemConfig{
			Name:    name,
			Spawn:   Point{X: x, Y: -300},
			Size:    Size{W: 32, H: 32},
			Trigger: Size{W: 40, H: 40},
			Color:   color,
		}
	}

	return BakeryConfig{
		Physics: BakeryPhysics{
			Gravity:   -60,
			JumpSpeed: 100,
			MoveSpeed: 100,
		},
		Player: ActorConfig{
			Pos:   Point{X: -200, Y: -250},
			Size:  Size{W: 32, H: 32},
			Color: "green",
		},
		Customer: ActorConfig{
			Pos:   Point{X: -500, Y: -200},
			Size:  Size{W: 32, H: 32},
			Color: "cyan",
		},
		Obstacles: []BoxConfig{
			{Name: "floor", Pos: Point{X: -200, Y: -350}, Size: Size{W: 2000, H: 60}, Color: "maroon"},
		},
		Counter: StationConfig{
			Pos:     Point{X: -400, Y: -300},
			Trigger: Size{W: 30, H: 36},
			Solid:   Size{W: 24, H: 35},
			Color:   "purple",
		},
		Table: StationConfig{
			Pos:     Point{X: 400, Y: -300},
			Trigger: Size{W: 50, H: 40},
			Solid:   Size{W: 44, H: 35},
			Color:   "red",
		},
		Bin: StationConfig{
			Pos:     Point{X: -250, Y: -300},
			Trigger: Size{W: 40, H: 40},
			Color:   "gray",
		},
		Items: []ItemConfig{
			ingredient("eggs", 0, "yellow"),
			ingredient("flour", 200, "white"),
			ingredient("chocolate", -100, "brown"),
			ingredient("milk", -80, "cream"),
			ingredient("strawberry", 250, "pink"),
		},
		Cakes: []CakeConfig{
			{Name: "chocolate", Color: "salmon"},
			{Name: "fraisier", Color: "gold"},
		},
		Recipes: []RecipeConfig{
			{Cake: "chocolate", Ingredients: []string{"eggs", "flour", "chocolate", "milk"}},
			{Cake: "fraisier", Ingredients: []string{"eggs", "flour", "strawberry", "milk"}},
		},
		Inventory: InventoryConfig{Capacity: 4},
		Carry: CarryConfig{
			Spacing:    10,
			Height:     10,
			Scale:      0.5,
			CakeOffset: Point{X: 0, Y: 40},
			WantOffset: Point{X: 0, Y: 30},
		},
		Session: SessionConfig{DurationSecs: 120},
		View: ViewConfig{
			UnitsPerCol: 12,
			UnitsPerRow: 24,
			FloorY:      -320,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bakery":
		return defaultBakeryYAML
	default:
		return nil
	}
}
