package text

// Style selects a face within a font family.
type Style uint8

const (
	StyleRegular Style = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// StyleOf returns the style for the given weight and slant.
func StyleOf(bold, italic bool) Style {
	switch {
	case bold && italic:
		return StyleBoldItalic
	case bold:
		return StyleBold
	case italic:
		return StyleItalic
	default:
		return StyleRegular
	}
}

// ParseStyle parses "regular", "bold", "italic" or "bolditalic".
func ParseStyle(s string) (Style, bool) {
	switch s {
	case "", "regular":
		return StyleRegular, true
	case "bold":
		return StyleBold, true
	case "italic":
		return StyleItalic, true
	case "bolditalic", "bold-italic":
		return StyleBoldItalic, true
	}
	return StyleRegular, false
}

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bolditalic"
	default:
		return "unknown"
	}
}
