package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the playfield. ColorDefault leaves the terminal color alone.
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
	ColorBrightCyan
	ColorOrange
	ColorGray

	colorCount
)

// ansiCodes holds the ANSI 256-color code of each color.
var ansiCodes = [colorCount]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorOrange:       "208",
	ColorGray:         "245",
}

// Colors returns every palette color, ColorDefault first.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// ANSI returns the ANSI 256-color code, or "" for ColorDefault and
// unknown colors.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}
