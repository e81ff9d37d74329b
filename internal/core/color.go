package core

// Color represents a foreground color for a screen cell.
// Values index the palette below; the platform maps them to ANSI codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorOrange
	ColorGray
)

// palette holds the approximate RGB of each color, used by NearestColor.
var palette = []struct {
	c       Color
	r, g, b float64
}{
	{ColorRed, 0.8, 0, 0},
	{ColorGreen, 0, 0.8, 0},
	{ColorYellow, 0.8, 0.8, 0},
	{ColorBlue, 0, 0, 0.8},
	{ColorMagenta, 0.8, 0, 0.8},
	{ColorCyan, 0, 0.8, 0.8},
	{ColorWhite, 0.75, 0.75, 0.75},
	{ColorBrightRed, 1, 0.33, 0.33},
	{ColorBrightGreen, 0.33, 1, 0.33},
	{ColorBrightYellow, 1, 1, 0.33},
	{ColorBrightBlue, 0.33, 0.33, 1},
	{ColorOrange, 1, 0.53, 0},
	{ColorGray, 0.55, 0.55, 0.55},
}

// NearestColor returns the palette color closest to the given RGB triple
// (components in [0, 1]).
func NearestColor(r, g, b float64) Color {
	best := ColorDefault
	bestDist := 4.0
	for _, p := range palette {
		dr, dg, db := r-p.r, g-p.g, b-p.b
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = p.c
		}
	}
	return best
}
