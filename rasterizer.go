package ggtex

import (
	"fmt"

	"github.com/gogpu/ggtex/text"
)

// FontRasterizer is the default Rasterizer. It resolves a Font's family
// and style through a text.Library, shapes the run with HarfBuzz and draws
// the glyph outlines into an alpha mask. Runs the family has no glyphs
// for are drawn from the library's glyph fallback families.
//
// FontRasterizer is safe for concurrent use.
type FontRasterizer struct {
	lib    *text.Library
	shaper *text.Shaper
}

// NewFontRasterizer creates a rasterizer over lib. A nil lib means
// text.DefaultLibrary().
func NewFontRasterizer(lib *text.Library) *FontRasterizer {
	if lib == nil {
		lib = text.DefaultLibrary()
	}
	return &FontRasterizer{lib: lib, shaper: text.NewShaper()}
}

// Library returns the font library used for family resolution.
func (r *FontRasterizer) Library() *text.Library {
	return r.lib
}

// Rasterize implements Rasterizer.
func (r *FontRasterizer) Rasterize(s string, f Font) (*Glyph, error) {
	src, err := r.lib.SourceFor(f.Family, textStyle(f.Style), s)
	if err != nil {
		return nil, err
	}

	ppem := f.PPEM()
	bmp, err := src.Rasterize(r.shaper.Shape(src, ppem, s), ppem)
	if err != nil {
		return nil, fmt.Errorf("ggtex: %s: %w", f, err)
	}
	return &Glyph{
		Mask:   bmp.Mask,
		Size:   Size{Width: bmp.Width, Height: bmp.Height},
		Ascent: bmp.Ascent,
	}, nil
}

// LineHeight implements Rasterizer. It returns 0 if the family cannot be
// loaded.
func (r *FontRasterizer) LineHeight(f Font) float64 {
	src, err := r.lib.Source(f.Family, textStyle(f.Style))
	if err != nil {
		return 0
	}
	return src.Metrics(f.PPEM()).LineHeight()
}

func textStyle(s Style) text.Style {
	return text.StyleOf(s.Bold(), s.Italic())
}
