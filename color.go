package ggtex

import (
	"image/color"
	"strconv"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// parseColor applies a \color argument. "#RRGGBB" sets an opaque RGB
// color; any other argument is looked up case-insensitively among the
// SVG 1.1 color names. If the argument cannot be parsed or resolved,
// prev is returned unchanged.
func parseColor(arg string, prev color.Color) (color.Color, bool) {
	if arg == "" {
		return prev, false
	}
	if arg[0] == '#' {
		if len(arg) != 7 {
			return prev, false
		}
		var ch [3]uint8
		for i := range ch {
			v, err := strconv.ParseUint(arg[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return prev, false
			}
			ch[i] = uint8(v)
		}
		return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, true
	}
	if c, ok := colornames.Map[cases.Fold().String(arg)]; ok {
		return c, true
	}
	return prev, false
}

// ParseColor parses a color the way \color does: "#RRGGBB" or an SVG
// color name.
func ParseColor(s string) (color.Color, bool) {
	return parseColor(s, nil)
}
