package text

import "math"

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap, the recommended distance
// between consecutive baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// BoxHeight returns the pixel height of a bitmap that holds any glyph of
// the font: ceil(ascent) + ceil(descent).
func (m Metrics) BoxHeight() int {
	return int(math.Ceil(m.Ascent)) + int(math.Ceil(m.Descent))
}
