package ggtex

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Draw composes the label onto dst with its top-left corner at origin.
// Runs are drawn left to right from the pen position plus their offset,
// in their own color or in fallback when unset. A '\r' item returns the
// pen to the start of the line; a '\n' item also moves it down by the
// height of the line just finished.
//
// Draw returns ErrGlyphMissing, wrapped with the run's key, if src no
// longer holds a queued run. Runs drawn before that stay on dst.
func (l *Label) Draw(dst draw.Image, origin image.Point, src GlyphSource, fallback color.Color) error {
	if l == nil {
		return nil
	}
	if fallback == nil {
		fallback = color.Black
	}

	pen := origin
	lineHeight := 0
	for _, it := range l.Items {
		switch it.Control {
		case '\n':
			pen.Y += lineHeight
			lineHeight = 0
			pen.X = origin.X
			continue
		case '\r':
			pen.X = origin.X
			continue
		}

		g, ok := src.Glyph(it.Key)
		if !ok || g == nil {
			return fmt.Errorf("%w: %s", ErrGlyphMissing, it.Key)
		}

		c := it.Color
		if c == nil {
			c = fallback
		}
		if g.Mask != nil {
			mb := g.Mask.Bounds()
			r := image.Rectangle{Max: mb.Size()}.Add(pen.Add(it.Offset))
			draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, g.Mask, mb.Min, draw.Over)
		}

		pen.X += g.Size.Width
		lineHeight = max(lineHeight, g.Size.Height)
	}
	return nil
}

// Image draws the label onto a new image of exactly its size, filled with
// bg (transparent when nil), using fg for runs without a color.
func (l *Label) Image(src GlyphSource, fg, bg color.Color) (*image.RGBA, error) {
	var size Size
	if l != nil {
		size = l.Size
	}
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	if err := l.Draw(img, image.Point{}, src, fg); err != nil {
		return nil, err
	}
	return img, nil
}
