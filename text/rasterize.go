package text

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Bitmap is a rasterized run: an alpha mask whose width is the run's
// advance and whose height is the font's box height, with the baseline
// Ascent pixels below the top edge.
type Bitmap struct {
	Mask   *image.Alpha
	Width  int
	Height int
	Ascent int
}

// Rasterize draws the glyph outlines of run into an alpha mask at ppem
// pixels per em. Glyphs without a monochrome outline (color emoji) are left
// blank but still advance.
func (s *FontSource) Rasterize(run ShapedRun, ppem float64) (*Bitmap, error) {
	s.copyCheck()

	m := s.Metrics(ppem)
	ascent := int(math.Ceil(m.Ascent))
	w := int(math.Ceil(run.Advance))
	h := m.BoxHeight()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	var buf sfnt.Buffer
	drawn := false

	for _, g := range run.Glyphs {
		segs, err := s.font.LoadGlyph(&buf, sfnt.GlyphIndex(g.GID), toFixed(ppem), nil)
		if err != nil {
			if errors.Is(err, sfnt.ErrColoredGlyph) {
				continue
			}
			return nil, err
		}

		ox := float32(g.X)
		oy := float32(float64(ascent) + g.Y)
		open := false
		for _, seg := range segs {
			a := seg.Args
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(ox+px(a[0].X), oy+px(a[0].Y))
				open = true
			case sfnt.SegmentOpLineTo:
				z.LineTo(ox+px(a[0].X), oy+px(a[0].Y))
			case sfnt.SegmentOpQuadTo:
				z.QuadTo(ox+px(a[0].X), oy+px(a[0].Y), ox+px(a[1].X), oy+px(a[1].Y))
			case sfnt.SegmentOpCubeTo:
				z.CubeTo(ox+px(a[0].X), oy+px(a[0].Y), ox+px(a[1].X), oy+px(a[1].Y), ox+px(a[2].X), oy+px(a[2].Y))
			}
		}
		if open {
			z.ClosePath()
			drawn = true
		}
	}

	if drawn {
		z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}

	return &Bitmap{Mask: mask, Width: w, Height: h, Ascent: ascent}, nil
}

func px(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
