package term

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var IsDarkBg = termenv.HasDarkBackground()

// Bright variants wash out on light backgrounds, so the palette is picked
// once at startup.
var (
	ColorHiGreen   = pickColor(color.FgHiGreen, color.FgGreen)
	ColorHiMagenta = pickColor(color.FgHiMagenta, color.FgMagenta)
	ColorHiRed     = pickColor(color.FgHiRed, color.FgRed)
	ColorHiYellow  = pickColor(color.FgHiYellow, color.FgYellow)
	ColorHiCyan    = pickColor(color.FgHiCyan, color.FgCyan)
)

func pickColor(dark, light color.Attribute) color.Attribute {
	if IsDarkBg {
		return dark
	}
	return light
}
