package ggtex

import (
	"image"
	"sync"
)

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// Glyph is a rasterized run of text.
type Glyph struct {
	// Mask is the coverage of the run; its bounds start at (0, 0).
	Mask *image.Alpha

	// Size is the layout size of the run. It matches the mask bounds.
	Size Size

	// Ascent is the distance from the top edge to the baseline.
	Ascent int
}

// Rasterizer renders runs of text. It is the only place glyph shapes are
// produced; the interpreter never draws anything itself.
type Rasterizer interface {
	// Rasterize renders text with font f.
	Rasterize(text string, f Font) (*Glyph, error)

	// LineHeight returns the baseline-to-baseline distance of f in pixels.
	LineHeight(f Font) float64
}

// GlyphStore caches rasterized runs by Key.
//
// The embedded Locker guards the miss path: an Interpreter that misses
// takes the lock, looks the key up again, rasterizes and stores, and only
// then unlocks, so concurrent parses sharing a store never rasterize the
// same key twice. Lookup on its own must be safe without the lock.
type GlyphStore interface {
	// Lookup returns the size of the run cached under key.
	Lookup(key Key) (Size, bool)

	// Store caches g under key.
	Store(key Key, g *Glyph)

	sync.Locker
}

// GlyphSource provides cached bitmaps to Label.Draw.
type GlyphSource interface {
	Glyph(key Key) (*Glyph, bool)
}
