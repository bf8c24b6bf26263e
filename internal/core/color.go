package core

// Color is a foreground color for a screen cell. The platform maps each value
// to a terminal color; games only pick from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorPurple
	ColorMaroon
	ColorPink
	ColorSalmon
	ColorGold
	ColorCream
	ColorBrown
)

// ParseColor maps a palette name (as used in config files) to a Color.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "gray":
		return ColorGray
	case "purple":
		return ColorPurple
	case "maroon":
		return ColorMaroon
	case "pink":
		return ColorPink
	case "salmon":
		return ColorSalmon
	case "gold":
		return ColorGold
	case "cream":
		return ColorCream
	case "brown":
		return ColorBrown
	default:
		return ColorDefault
	}
}
