package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a parsed font file.
// FontSource is heavyweight and should be shared across the application;
// a Library hands out one FontSource per registered family and style.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr points to the FontSource itself and detects copies.
	addr *FontSource

	data []byte
	font *sfnt.Font
	name string
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{data: dataCopy, font: f}
	s.addr = s
	s.name = fontName(f)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name recorded in the font file.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Metrics returns the font metrics scaled to ppem pixels per em.
func (s *FontSource) Metrics(ppem float64) Metrics {
	s.copyCheck()

	m, err := s.font.Metrics(nil, toFixed(ppem), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	ascent := fromFixed(m.Ascent)
	descent := fromFixed(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fromFixed(m.Height) - ascent - descent,
	}
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
func (s *FontSource) HasGlyph(r rune) bool {
	s.copyCheck()
	gid, err := s.font.GlyphIndex(nil, r)
	return err == nil && gid != 0
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func fontName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
