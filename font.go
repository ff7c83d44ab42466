package ggtex

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/ggtex/text"
)

// MaxFontSize is the exclusive upper bound for absolute \fontsize values
// and the cap for relative increases.
const MaxFontSize = 40

// Style is a set of font style flags. The zero value is regular.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleItalic

	StyleRegular Style = 0
)

// Bold reports whether the bold flag is set.
func (s Style) Bold() bool { return s&StyleBold != 0 }

// Italic reports whether the italic flag is set.
func (s Style) Italic() bool { return s&StyleItalic != 0 }

func (s Style) String() string {
	return text.StyleOf(s.Bold(), s.Italic()).String()
}

// Unit is the measurement unit of a font size.
type Unit uint8

const (
	UnitPixel Unit = iota
	UnitPoint
)

// pointDPI is the resolution used to convert point sizes to pixels.
const pointDPI = 96

func (u Unit) String() string {
	if u == UnitPoint {
		return "pt"
	}
	return "px"
}

// ParseUnit parses "px" or "pt". The empty string is pixels.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(s) {
	case "", "px", "pixel":
		return UnitPixel, true
	case "pt", "point":
		return UnitPoint, true
	}
	return UnitPixel, false
}

// Font describes the font of a run of text. Fonts are values: every
// control sequence derives a new Font instead of changing one in place.
type Font struct {
	Family string
	Size   float64
	Style  Style
	Unit   Unit
}

// DefaultFont is the font an Interpreter starts from when none is given.
var DefaultFont = Font{Family: text.FamilyGo, Size: 12}

// WithFamily returns f with a different family.
func (f Font) WithFamily(family string) Font {
	f.Family = family
	return f
}

// WithSize returns f with a different size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// WithStyle returns f with its style replaced.
func (f Font) WithStyle(s Style) Font {
	f.Style = s
	return f
}

// AddStyle returns f with the style flags in s added.
func (f Font) AddStyle(s Style) Font {
	f.Style |= s
	return f
}

// PPEM returns the font size in pixels per em.
func (f Font) PPEM() float64 {
	if f.Unit == UnitPoint {
		return f.Size * pointDPI / 72
	}
	return f.Size
}

// String returns a stable description such as "Go 12px bold".
func (f Font) String() string {
	var b strings.Builder
	b.WriteString(f.Family)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(f.Size, 'g', -1, 64))
	b.WriteString(f.Unit.String())
	if f.Style != StyleRegular {
		b.WriteByte(' ')
		b.WriteString(f.Style.String())
	}
	return b.String()
}

// resizeFont applies a \fontsize argument to f. The argument is an
// absolute size N (accepted when 0 < N < MaxFontSize), +N (added to the
// truncated current size, capped at MaxFontSize) or -N (accepted only when
// N is smaller than the current size). It returns the new font, the
// rounded size decrease to add to the vertical offset so the baseline
// stays in place, and whether the change was accepted.
func resizeFont(f Font, arg string) (Font, int, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return f, 0, false
	}

	cur := int(f.Size)
	switch {
	case strings.HasPrefix(arg, "+") && n > 0:
		n = min(cur+n, MaxFontSize)
	case strings.HasPrefix(arg, "-") && float64(-n) < f.Size:
		n = cur + n
	case strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-"):
		return f, 0, false
	case n >= MaxFontSize:
		return f, 0, false
	}
	if n <= 0 || n > MaxFontSize {
		return f, 0, false
	}

	shift := int(math.Round(f.Size - float64(n)))
	return f.WithSize(float64(n)), shift, true
}
