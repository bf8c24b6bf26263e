// Package config provides YAML-based configuration loading and difficulty
// presets for the bakery.
package config

// BakeryConfig contains all configuration for the bakery game.
type BakeryConfig struct {
	Physics   BakeryPhysics   `yaml:"physics"`
	Player    ActorConfig     `yaml:"player"`
	Customer  ActorConfig     `yaml:"customer"`
	Obstacles []BoxConfig     `yaml:"obstacles"`
	Counter   StationConfig   `yaml:"counter"`
	Table     StationConfig   `yaml:"table"`
	Bin       StationConfig   `yaml:"bin"`
	Items     []ItemConfig    `yaml:"items"`
	Cakes     []CakeConfig    `yaml:"cakes"`
	Recipes   []RecipeConfig  `yaml:"recipes"`
	Inventory InventoryConfig `yaml:"inventory"`
	Carry     CarryConfig     `yaml:"carry"`
	Session   SessionConfig   `yaml:"session"`
	View      ViewConfig      `yaml:"view"`
}

// BakeryPhysics defines physics parameters. All values are in world units
// and seconds.
type BakeryPhysics struct {
	Gravity   float64 `yaml:"gravity"`    // added to vertical acceleration every tick
	JumpSpeed float64 `yaml:"jump_speed"` // upward speed gained by a jump
	MoveSpeed float64 `yaml:"move_speed"` // horizontal walk speed
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Size is a full box size.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ActorConfig places the player or the customer.
type ActorConfig struct {
	Pos   Point  `yaml:"pos"`
	Size  Size   `yaml:"size"`
	Color string `yaml:"color"`
}

// BoxConfig is a static blocking box such as the floor.
type BoxConfig struct {
	Name  string `yaml:"name"`
	Pos   Point  `yaml:"pos"`
	Size  Size   `yaml:"size"`
	Color string `yaml:"color"`
}

// StationConfig places the counter, the table or the bin. A station with no
// solid size can be walked through.
type StationConfig struct {
	Pos     Point  `yaml:"pos"`
	Trigger Size   `yaml:"trigger"`
	Solid   Size   `yaml:"solid"`
	Color   string `yaml:"color"`
}

// ItemConfig is the spawn point of one ingredient.
type ItemConfig struct {
	Name    string `yaml:"name"`
	Spawn   Point  `yaml:"spawn"`
	Size    Size   `yaml:"size"`
	Trigger Size   `yaml:"trigger"`
	Color   string `yaml:"color"`
}

// CakeConfig defines how a cake looks.
type CakeConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// RecipeConfig maps ingredient names to a cake name.
type RecipeConfig struct {
	Cake        string   `yaml:"cake"`
	Ingredients []string `yaml:"ingredients"`
}

// InventoryConfig defines the player's slots.
type InventoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// CarryConfig defines where carried things are drawn.
type CarryConfig struct {
	Spacing    float64 `yaml:"spacing"`
	Height     float64 `yaml:"height"`
	Scale      float64 `yaml:"scale"`
	CakeOffset Point   `yaml:"cake_offset"`
	WantOffset Point   `yaml:"want_offset"`
}

// SessionConfig defines the round length.
type SessionConfig struct {
	DurationSecs int `yaml:"duration_secs"` // 0 plays without a timer
}

// ViewConfig maps world units onto terminal cells.
type ViewConfig struct {
	UnitsPerCol float64 `yaml:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row"`
	FloorY      float64 `yaml:"floor_y"` // world y kept near the bottom of the screen
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// DurationFactorForPreset returns how much a preset stretches the session.
func DurationFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset leaves the config untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
