package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFonts is returned when a library has no usable family at all.
	ErrNoFonts = errors.New("text: no font families registered")
)

// FontError reports a failure to load a registered font.
type FontError struct {
	Family string
	Style  Style
	Err    error
}

func (e *FontError) Error() string {
	return "text: font " + e.Family + " (" + e.Style.String() + "): " + e.Err.Error()
}

func (e *FontError) Unwrap() error { return e.Err }
